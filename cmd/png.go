package cmd

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/jsphweid/fretdex/file"
	"github.com/jsphweid/fretdex/logger"
	"github.com/jsphweid/fretdex/render"
	"github.com/jsphweid/fretdex/theory"
	"github.com/jsphweid/fretdex/view"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	pngCmd.Flags().StringP("output", "o", "", "output file (default <out-dir>/<uuid>.png)")
	pngCmd.Flags().Int("width", 1200, "image width in pixels, 0 keeps the natural size")
	cobra.CheckErr(v.BindPFlag("png.width", pngCmd.Flags().Lookup("width")))
	rootCmd.AddCommand(pngCmd)
}

var pngCmd = &cobra.Command{
	Use:   "png [triads...]",
	Short: "Renders triads on the neck to a PNG file",
	RunE: func(cmd *cobra.Command, args []string) error {
		sel, err := theory.ParseSelection(args)
		if err != nil {
			return err
		}

		output, _ := cmd.Flags().GetString("output")
		path, err := file.OutputPath(output, config.OutDir, ".png")
		if err != nil {
			return err
		}

		f, err := os.Create(path)
		if err != nil {
			return errors.Wrapf(err, "could not create %s", path)
		}
		defer f.Close()

		if _, err := view.Refresh(view.Static(sel), render.PNG{W: f, Width: config.PNG.Width}); err != nil {
			return err
		}
		if err := f.Close(); err != nil {
			return errors.Wrapf(err, "could not close %s", path)
		}

		logger.Logger.Infow("Wrote png", "path", path, "triads", len(sel))
		pterm.Success.Printfln("Wrote %s", path)
		return nil
	},
}
