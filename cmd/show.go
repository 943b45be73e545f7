package cmd

import (
	"github.com/jsphweid/fretdex/render"
	"github.com/jsphweid/fretdex/theory"
	"github.com/jsphweid/fretdex/view"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show [triads...]",
	Short: "Draws triads on the neck in the terminal",
	Long: `Draws the selected triads on the neck in the terminal. Without
arguments every note of the chromatic scale is shown.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sel, err := theory.ParseSelection(args)
		if err != nil {
			return err
		}
		_, err = view.Refresh(view.Static(sel), render.Terminal{W: cmd.OutOrStdout()})
		return err
	},
}
