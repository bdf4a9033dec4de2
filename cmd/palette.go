package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/czz/discolor/core/palette"
	"github.com/czz/discolor/core/tui"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "List the colours and their ANSI codes",
	RunE:  runPalette,
}

func init() {
	rootCmd.AddCommand(paletteCmd)
}

func runPalette(cmd *cobra.Command, args []string) error {
	effects := !noEffects
	t := tui.NewTui(effects)

	rows := [][]string{{"Axis", "Name", "ANSI", "Sample"}}
	for _, p := range []*palette.Palette{palette.Foreground, palette.Background} {
		for _, e := range p.Entries() {
			rows = append(rows, []string{p.Axis().String(), e.Name, e.Code, t.Swatch(e)})
		}
	}
	fmt.Fprint(cmd.OutOrStdout(), t.Table(&tui.Table{LineSeparator: true, Padding: 1}, rows))
	return nil
}
