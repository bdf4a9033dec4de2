package session

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/chzyer/readline"
	"github.com/google/uuid"

	"github.com/czz/discolor/core/clipboard"
	"github.com/czz/discolor/core/composer"
	"github.com/czz/discolor/core/tui"
	"github.com/czz/discolor/utils/help"
	"github.com/czz/discolor/utils/option"
)

// commandFunc handles one console command. args are the whitespace-separated
// words after the command; rest is the raw remainder of the line.
type commandFunc func(args []string, rest string)

// LineReader is the input side of the console. *readline.Instance satisfies it.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(string)
}

// Settings configures a new Session.
type Settings struct {
	Tui            *tui.Tui
	Clipboards     *clipboard.Manager
	Clipboard      string        // Initial backend name
	Timeout        time.Duration // Upper bound for one clipboard write
	EmitBackground bool
	ShowExport     bool
	HistoryFile    string
	Out            io.Writer  // Defaults to readline's stdout
	Input          LineReader // Defaults to a readline instance created by Start
}

// Session is one interactive composition. Everything runs on the goroutine
// calling ReadlineLoop, so no state is locked.
type Session struct {
	ID        string
	StartedAt time.Time
	Active    bool
	Tui       *tui.Tui
	ReadLine  *readline.Instance

	composer    *composer.Composer
	clipboards  *clipboard.Manager
	options     *option.OptionManager
	help        *help.HelpManager
	commands    map[string]commandFunc
	aliases     map[string]string
	input       LineReader
	out         io.Writer
	historyFile string
	timeout     time.Duration
}

// NewSession initializes and returns a new Session instance.
func NewSession(cfg Settings) *Session {
	if cfg.Tui == nil {
		cfg.Tui = tui.NewTui()
	}
	if cfg.Clipboards == nil {
		cfg.Clipboards = clipboard.NewManager()
	}
	if names := cfg.Clipboards.List(); cfg.Clipboard == "" && len(names) > 0 {
		cfg.Clipboard = names[0]
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 3 * time.Second
	}

	s := &Session{
		ID:          uuid.NewString()[:8],
		Tui:         cfg.Tui,
		composer:    composer.New(),
		clipboards:  cfg.Clipboards,
		options:     option.NewOptionManager(),
		help:        help.NewHelpManager(),
		commands:    make(map[string]commandFunc),
		aliases:     make(map[string]string),
		input:       cfg.Input,
		out:         cfg.Out,
		historyFile: cfg.HistoryFile,
		timeout:     cfg.Timeout,
	}

	s.options.Register(option.NewOption("CLIPBOARD", cfg.Clipboard, "Where export copies the markdown", s.clipboards.List()...))
	s.options.Register(option.NewOption("EMIT_BACKGROUND", cfg.EmitBackground, "Include background colours in the exported escapes"))
	s.options.Register(option.NewOption("SHOW_EXPORT", cfg.ShowExport, "Print the markdown after export"))

	s.registerCommands()
	return s
}

// Start opens the readline prompt unless an input was supplied.
func (s *Session) Start() error {
	s.Tui.SetPrompt(s.Tui.Green("dc>") + " ")

	if s.input == nil {
		rl, err := readline.NewEx(&readline.Config{
			Prompt:          s.Tui.GetPrompt(),
			HistoryFile:     s.historyFile,
			InterruptPrompt: "^C",
			EOFPrompt:       "exit",
			HistoryLimit:    500,
			AutoComplete:    s.commandCompleter(),
		})
		if err != nil {
			return fmt.Errorf("starting readline: %w", err)
		}
		s.ReadLine = rl
		s.input = rl
		if s.out == nil {
			s.out = rl.Stdout()
		}
	}
	if s.out == nil {
		s.out = os.Stdout
	}

	s.Active = true
	s.StartedAt = time.Now()
	s.logInfo("Session started")
	return nil
}

// Stop ends the session and closes the readline interface.
func (s *Session) Stop() {
	if !s.Active {
		return
	}
	s.Active = false
	if s.ReadLine != nil {
		s.ReadLine.Close()
	}
	s.logInfo("Session stopped after %s", time.Since(s.StartedAt).Round(time.Second))
}

// Composer exposes the composition state.
func (s *Session) Composer() *composer.Composer {
	return s.composer
}

func (s *Session) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *Session) table(matrix [][]string, borders bool) {
	fmt.Fprint(s.out, s.Tui.Table(&tui.Table{LineSeparator: borders, Padding: 1}, matrix))
}

// commandCompleter builds the autocomplete tree from commands, palettes and
// options.
func (s *Session) commandCompleter() *readline.PrefixCompleter {
	items := make([]readline.PrefixCompleterInterface, 0, len(s.commands))
	for _, entry := range s.help.List() {
		var children []readline.PrefixCompleterInterface
		switch entry.Name {
		case "fg":
			children = pcItems(foregroundNames())
		case "bg":
			children = pcItems(backgroundNames())
		case "set":
			for _, opt := range s.options.List() {
				values := opt.Choices
				if _, ok := opt.Value.(bool); ok {
					values = []string{"true", "false"}
				}
				children = append(children, readline.PcItem(opt.Name, pcItems(values)...))
			}
		case "help":
			children = pcItems(s.commandNames())
		}
		items = append(items, readline.PcItem(entry.Name, children...))
	}
	return readline.NewPrefixCompleter(items...)
}

func pcItems(names []string) []readline.PrefixCompleterInterface {
	items := make([]readline.PrefixCompleterInterface, len(names))
	for i, n := range names {
		items[i] = readline.PcItem(n)
	}
	return items
}
