package session

import (
	"errors"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// ReadlineLoop reads and executes commands until the session ends.
func (s *Session) ReadlineLoop() {
	for s.Active {
		line, err := s.input.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			s.println(s.Tui.Dim("Type exit to quit."))
			continue
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				s.logError(err, "reading command line")
			}
			s.Stop()
			return
		}
		s.Execute(line)
	}
}

// Execute parses and runs one console line.
func (s *Session) Execute(line string) {
	trimmed := strings.TrimLeft(line, " \t")
	if strings.TrimSpace(trimmed) == "" {
		return
	}
	s.logCommand(strings.TrimSpace(line))

	name, rest, _ := strings.Cut(trimmed, " ")
	name = strings.ToLower(strings.TrimSpace(name))
	if target, ok := s.aliases[name]; ok {
		name = target
	}

	handler, found := s.commands[name]
	if !found {
		s.println(s.Tui.Red("Unknown command: " + name + " (try help)"))
		return
	}
	handler(strings.Fields(rest), rest)

	s.Refresh()
}

// readMultiline collects lines until one holds a single ".". ok is false when
// the user interrupts, in which case nothing should change.
func (s *Session) readMultiline() (text string, ok bool) {
	s.input.SetPrompt(s.Tui.Dim("...") + " ")
	defer s.input.SetPrompt(s.Tui.GetPrompt())

	var lines []string
	for {
		line, err := s.input.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			return "", false
		}
		if err != nil || line == "." {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), true
}

// Refresh updates autocompletion and redraws the prompt.
func (s *Session) Refresh() {
	if s.ReadLine == nil || !s.Active {
		return
	}
	s.ReadLine.Config.AutoComplete = s.commandCompleter()
	s.ReadLine.SetPrompt(s.Tui.GetPrompt())
	s.ReadLine.Refresh()
}
