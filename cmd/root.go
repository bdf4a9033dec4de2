// Package cmd wires configuration, logging and clipboard backends into the
// interactive console.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/czz/discolor/core/clipboard"
	"github.com/czz/discolor/core/config"
	"github.com/czz/discolor/core/session"
	"github.com/czz/discolor/core/tui"
)

var (
	cfgFile   string
	noEffects bool
)

var rootCmd = &cobra.Command{
	Use:   "discolor",
	Short: "Compose coloured Discord messages with ANSI code blocks",
	Long: `discolor is an interactive console for colouring Discord messages.
Write your text, colour it piece by piece, and export a message that Discord
renders in colour through its ansi code blocks.`,
	SilenceUsage: true,
	RunE:         runConsole,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.discolor/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noEffects, "no-effects", false, "disable colours in console output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func loadConfig() (config.Config, error) {
	dir, err := config.Dir()
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(viper.New(), cfgFile, dir)
	if err != nil {
		return config.Config{}, err
	}
	if noEffects {
		cfg.UI.Effects = false
	}
	return cfg, nil
}

func newTui(cfg config.Config) *tui.Tui {
	if !cfg.UI.Effects {
		return tui.NewTui(false)
	}
	return tui.NewTui()
}

// clipboards registers every backend; the config only picks the active one.
func clipboards(cfg config.Config, terminal io.Writer) *clipboard.Manager {
	m := clipboard.NewManager()
	m.Register(clipboard.System{})
	m.Register(clipboard.OSC52{Out: terminal})
	m.Register(clipboard.ParseCommand(cfg.Clipboard.Command))
	m.Register(clipboard.File{Path: cfg.Clipboard.File})
	return m
}

func runConsole(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logFile, err := session.SetupLogger(cfg.Log.File)
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning:", err)
	} else {
		defer logFile.Close()
	}

	t := newTui(cfg)
	fmt.Println(t.Bold(t.Magenta(banner)))
	fmt.Println(t.Dim("Write your text, colour it piece by piece, then export it to Discord. Type help for commands."))
	fmt.Println()

	s := session.NewSession(session.Settings{
		Tui:            t,
		Clipboards:     clipboards(cfg, os.Stdout),
		Clipboard:      cfg.Clipboard.Backend,
		Timeout:        cfg.Clipboard.Timeout,
		EmitBackground: cfg.Render.EmitBackground,
		ShowExport:     cfg.Render.ShowExport,
		HistoryFile:    cfg.UI.HistoryFile,
	})
	if err := s.Start(); err != nil {
		return err
	}
	defer s.Stop()

	s.ReadlineLoop()
	return nil
}

const banner = `
 ┌──────────────────────────┐
 │  d i s c o l o r         │
 │  ANSI colours for Discord│
 └──────────────────────────┘`
