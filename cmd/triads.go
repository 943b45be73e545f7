package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/theory"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(triadsCmd)
}

var triadsCmd = &cobra.Command{
	Use:   "triads <root>",
	Short: "Lists the triads built on a root",
	Long:  `Lists the major, minor, diminished and augmented triads built on a root note.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := model.Note(args[0])
		triads, err := theory.TriadsFor(root)
		if err != nil {
			return err
		}

		data := pterm.TableData{{"Quality", "Notes"}}
		for _, q := range theory.Qualities() {
			names := make([]string, 0, len(triads[q]))
			for _, n := range triads[q] {
				names = append(names, string(n))
			}
			data = append(data, []string{string(q), strings.Join(names, " ")})
		}

		table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), table)
		return err
	},
}
