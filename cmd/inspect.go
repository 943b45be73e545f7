package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/logger"
	"github.com/jsphweid/fretdex/midi"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	inspectCmd.Flags().Bool("json", false, "print json instead of a table")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Lists the triads sounding in a MIDI file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := midi.ReadMidiFile(args[0])
		if err != nil {
			return err
		}
		chords, err := chord.GetChords(s)
		if err != nil {
			return err
		}
		found := chord.Triads(chords)
		logger.Logger.Debugw("Inspected midi file", "path", args[0], "chords", len(chords), "triads", len(found))

		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(found)
		}

		if len(found) == 0 {
			_, err := fmt.Fprintln(out, "No triads found.")
			return err
		}

		data := pterm.TableData{{"Time", "Notes", "Triads"}}
		for _, ct := range found {
			data = append(data, []string{
				fmt.Sprintf("%.3fs", float64(ct.Offset)/1000),
				chord.CreateChordKey(ct.Notes),
				strings.Join(ct.Labels, " "),
			})
		}
		table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, table)
		return err
	},
}
