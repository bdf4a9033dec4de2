package session

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/czz/discolor/core/composer"
	"github.com/czz/discolor/core/markdown"
	"github.com/czz/discolor/core/palette"
	"github.com/czz/discolor/core/tui"
)

// registerCommands fills the command map and the help entries together so
// that help lists commands in the order they are registered here.
func (s *Session) registerCommands() {
	s.register("text", "text [content]", "Set the source text; without content, read lines until \".\"", s.handleText,
		[]string{`text Hello World`, "source text is \"Hello World\""},
		[]string{`text line one\nline two`, `\n becomes a line break`},
		[]string{"text", "multi-line entry"})
	s.register("append", "append <content>", "Append to the source text", s.handleAppend)
	s.register("fg", "fg <color>", "Toggle the pending foreground colour", s.handleForeground,
		[]string{"fg red", "select red"},
		[]string{"fg red", "again: clear the foreground"})
	s.register("bg", "bg <color>", "Toggle the pending background colour", s.handleBackground)
	s.register("commit", "commit", "Colour the remaining text with the pending selection", s.handleCommit)
	s.register("reset", "reset", "Clear text, segments and selection", s.handleReset)
	s.register("export", "export", "Copy the Discord markdown to the clipboard", s.handleExport)
	s.register("render", "render", "Print the Discord markdown with escapes visible", s.handleRender)
	s.register("preview", "preview", "Show the committed segments in colour", s.handlePreview)
	s.register("segments", "segments", "List committed segments", s.handleSegments)
	s.register("status", "status", "Show text, consumption and pending selection", s.handleStatus)
	s.register("palette", "palette", "List the available colours", s.handlePalette)
	s.register("options", "options", "Show runtime options", s.handleOptions)
	s.register("set", "set <option> <value>", "Change a runtime option", s.handleSet,
		[]string{"set CLIPBOARD osc52", "copy through the terminal"},
		[]string{"set EMIT_BACKGROUND true", "export background colours too"})
	s.register("help", "help [command]", "Help menu", s.handleHelp)
	s.register("exit", "exit", "Quit", s.handleExit)

	s.aliases["add"] = "commit"
	s.aliases["copy"] = "export"
	s.aliases["quit"] = "exit"
}

func (s *Session) register(name, syntax, description string, fn commandFunc, examples ...[]string) {
	s.commands[name] = fn
	s.help.Register(name, syntax, description, examples...)
}

func (s *Session) commandNames() []string {
	names := make([]string, 0, len(s.commands))
	for _, e := range s.help.List() {
		names = append(names, e.Name)
	}
	return names
}

// handleHelp displays the command list, or details for one command.
func (s *Session) handleHelp(args []string, _ string) {
	if len(args) > 0 {
		name := strings.ToLower(args[0])
		if target, ok := s.aliases[name]; ok {
			name = target
		}
		rows, ok := s.help.Get(name)
		if !ok {
			s.println(s.Tui.Red("No help for: " + args[0]))
			return
		}
		s.table(rows, false)
		return
	}
	s.table(s.help.Summary("Commands"), false)
}

var escapes = strings.NewReplacer(`\\`, `\`, `\n`, "\n", `\t`, "\t")

func (s *Session) handleText(args []string, rest string) {
	if len(args) == 0 {
		s.println(s.Tui.Dim(`Enter text, finish with a line holding "." (Ctrl-C cancels).`))
		text, ok := s.readMultiline()
		if !ok {
			s.println(s.Tui.Yellow("Text unchanged."))
			return
		}
		s.composer.SetText(text)
	} else {
		s.composer.SetText(escapes.Replace(rest))
	}
	s.printTextState()
}

func (s *Session) handleAppend(args []string, rest string) {
	if len(args) == 0 {
		s.println(s.Tui.Red("Usage: append <content>"))
		return
	}
	s.composer.SetText(s.composer.Text() + escapes.Replace(rest))
	s.printTextState()
}

func (s *Session) printTextState() {
	text := s.composer.Text()
	s.println(s.Tui.Green(fmt.Sprintf("Text set: %d characters, %d not yet coloured.",
		len([]rune(text)), len([]rune(s.composer.Remaining())))))
}

func (s *Session) handleForeground(args []string, _ string) {
	s.toggle(palette.Foreground, args)
}

func (s *Session) handleBackground(args []string, _ string) {
	s.toggle(palette.Background, args)
}

func (s *Session) toggle(p *palette.Palette, args []string) {
	axis := p.Axis().String()
	if len(args) != 1 {
		s.println(s.Tui.Red(fmt.Sprintf("Usage: %s <color> (%s)", axisCommand(p.Axis()), strings.Join(p.Names(), ", "))))
		return
	}
	entry, ok := p.Lookup(args[0])
	if !ok {
		s.println(s.Tui.Red(fmt.Sprintf("Unknown %s colour: %s (choose from %s)", axis, args[0], strings.Join(p.Names(), ", "))))
		return
	}

	var now composer.Color
	if p.Axis() == palette.AxisBackground {
		s.composer.ToggleBackground(entry)
		_, now = s.composer.Pending()
	} else {
		s.composer.ToggleForeground(entry)
		now, _ = s.composer.Pending()
	}

	if now.IsPresent() {
		s.println(s.Tui.Yellow(fmt.Sprintf("%s => %s", axis, now.Name())))
	} else {
		s.println(s.Tui.Yellow(axis + " cleared"))
	}
}

func axisCommand(a palette.Axis) string {
	if a == palette.AxisBackground {
		return "bg"
	}
	return "fg"
}

// handleCommit appends a segment. Without a pending colour it does nothing.
func (s *Session) handleCommit(_ []string, _ string) {
	seg, ok := s.composer.Commit()
	if !ok {
		s.logInfo("commit ignored: no colour selected")
		return
	}

	n := len(s.composer.Segments())
	s.println(s.Tui.Green(fmt.Sprintf("Segment #%d committed (fg %s, bg %s): %q", n, seg.FG.Name(), seg.BG.Name(), seg.Text)))
	if seg.Text == "" {
		s.println(s.Tui.Yellow("Segment is empty: all text was already coloured."))
	}
}

func (s *Session) handleReset(_ []string, _ string) {
	s.composer.Reset()
	s.println(s.Tui.Green("Everything cleared."))
}

func (s *Session) renderOptions() markdown.Options {
	opt, _ := s.options.Get("EMIT_BACKGROUND")
	return markdown.Options{EmitBackground: opt.Bool()}
}

// handleExport renders the markdown and waits for the clipboard backend,
// reporting its actual outcome.
func (s *Session) handleExport(_ []string, _ string) {
	segs := s.composer.Segments()
	md := markdown.Render(segs, s.renderOptions())
	if len(segs) == 0 {
		s.println(s.Tui.Yellow("No segments committed; exporting an empty message."))
	}

	opt, _ := s.options.Get("CLIPBOARD")
	backend, ok := s.clipboards.Get(opt.String())
	if !ok {
		s.println(s.Tui.Red("No clipboard backend named " + opt.String()))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	if err := backend.Copy(ctx, md); err != nil {
		s.println(s.Tui.Red(fmt.Sprintf("Copy failed (%s): %s", backend.Name(), err)))
		s.logError(err, "copying with "+backend.Name())
		return
	}

	s.logInfo("exported %d segments via %s", len(segs), backend.Name())
	s.println(s.Tui.Green("Copied to clipboard!"))
	if show, _ := s.options.Get("SHOW_EXPORT"); show.Bool() {
		s.println(md)
	}
}

func (s *Session) handleRender(_ []string, _ string) {
	s.println(strconv.Quote(markdown.Render(s.composer.Segments(), s.renderOptions())))
}

func (s *Session) handlePreview(_ []string, _ string) {
	segs := s.composer.Segments()
	if len(segs) == 0 {
		s.println(s.Tui.Dim("No segments yet."))
		return
	}
	s.println(s.Tui.Preview(segs))
}

func (s *Session) handleSegments(_ []string, _ string) {
	segs := s.composer.Segments()
	if len(segs) == 0 {
		s.println(s.Tui.Dim("No segments yet."))
		return
	}
	rows := [][]string{{"#", "Foreground", "Background", "Text"}}
	for i, seg := range segs {
		rows = append(rows, []string{strconv.Itoa(i + 1), seg.FG.Name(), seg.BG.Name(), tui.Visible(seg.Text)})
	}
	s.table(rows, true)
}

func (s *Session) handleStatus(_ []string, _ string) {
	fg, bg := s.composer.Pending()
	clip, _ := s.options.Get("CLIPBOARD")
	rows := [][]string{
		{"  Text", tui.Visible(s.composer.Text())},
		{"  Length", strconv.Itoa(len([]rune(s.composer.Text())))},
		{"  Coloured", strconv.Itoa(s.composer.Consumed())},
		{"  Remaining", tui.Visible(s.composer.Remaining())},
		{"  Segments", strconv.Itoa(len(s.composer.Segments()))},
		{"  Pending fg", fg.Name()},
		{"  Pending bg", bg.Name()},
		{"  Clipboard", clip.String()},
	}
	s.table(rows, false)
}

func (s *Session) handlePalette(_ []string, _ string) {
	for _, p := range []*palette.Palette{palette.Foreground, palette.Background} {
		rows := [][]string{{strings.ToUpper(p.Axis().String()[:1]) + p.Axis().String()[1:], "ANSI", "Sample"}}
		for _, e := range p.Entries() {
			rows = append(rows, []string{e.Name, e.Code, s.Tui.Swatch(e)})
		}
		s.table(rows, true)
	}
}

func (s *Session) handleOptions(_ []string, _ string) {
	rows := [][]string{
		{"  Name", "Current Setting", "Allowed", "Description"},
		{"  ----", "---------------", "-------", "-----------"},
	}
	for _, opt := range s.options.List() {
		f := opt.Format()
		rows = append(rows, []string{"  " + f["name"], f["value"], f["allowed"], f["description"]})
	}
	s.table(rows, false)
}

func (s *Session) handleSet(args []string, _ string) {
	if len(args) < 2 {
		s.println(s.Tui.Red("Usage: set <option> <value>"))
		return
	}
	opt, ok := s.options.Get(args[0])
	if !ok {
		names := s.options.Names()
		sort.Strings(names)
		s.println(s.Tui.Red(fmt.Sprintf("Unknown option: %s (choose from %s)", args[0], strings.Join(names, ", "))))
		return
	}
	if err := opt.Parse(strings.Join(args[1:], " ")); err != nil {
		s.println(s.Tui.Red(err.Error()))
		return
	}
	s.println(s.Tui.Yellow(opt.Name + " => " + opt.String()))
}

func (s *Session) handleExit(_ []string, _ string) {
	s.println(s.Tui.Green("Bye."))
	s.Stop()
}

func foregroundNames() []string { return palette.Foreground.Names() }
func backgroundNames() []string { return palette.Background.Names() }
