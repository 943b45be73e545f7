package cmd

import (
	"github.com/cockroachdb/errors"
	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/file"
	"github.com/jsphweid/fretdex/logger"
	"github.com/jsphweid/fretdex/midi"
	"github.com/jsphweid/fretdex/sample"
	"github.com/jsphweid/fretdex/theory"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	exportCmd.Flags().StringP("output", "o", "", "output file (default <out-dir>/<uuid>.mid)")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <triads...>",
	Short: "Writes triads to a MIDI file",
	Long:  `Writes the selected triads to a Standard MIDI File, one beat per triad.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sel, err := theory.ParseSelection(args)
		if err != nil {
			return err
		}

		s, err := sample.Create(sel, constants.BaseMidiNote, config.Midi.Velocity)
		if err != nil {
			return errors.Wrap(err, "could not build midi file")
		}

		output, _ := cmd.Flags().GetString("output")
		path, err := file.OutputPath(output, config.OutDir, ".mid")
		if err != nil {
			return err
		}
		if err := midi.WriteMidiFile(s, path); err != nil {
			return err
		}

		logger.Logger.Infow("Wrote midi file", "path", path, "triads", len(sel))
		pterm.Success.Printfln("Wrote %s", path)
		return nil
	},
}
