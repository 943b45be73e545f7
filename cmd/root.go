package cmd

import (
	"github.com/cockroachdb/errors"
	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/logger"
	"github.com/spf13/cobra"
)

var (
	v      = constants.NewViper()
	config *constants.Config
)

var rootCmd = &cobra.Command{
	Use:   "fretdex",
	Short: "Shows triads on a guitar neck",
	Long: `fretdex computes major, minor, diminished and augmented triads and shows
where their notes sit on a 24 fret guitar in standard tuning. Notes shared
by several selected triads are color coded.

Selections are written as C, Am, Bdim, Caug, or C|major.

Examples:
  fretdex triads C          # the four triads on C
  fretdex show C Am         # C major and A minor on the neck
  fretdex png -o neck.png G Em
  fretdex serve             # JSON/PNG http api
  fretdex listen            # follow chords played on a midi keyboard`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if path, _ := cmd.Flags().GetString("config"); path != "" {
			v.SetConfigFile(path)
		}
		c, err := constants.Load(v)
		if err != nil {
			return err
		}
		config = c
		if err := logger.Initialize(config.Log.JSON, config.Log.Level); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default ./fretdex.toml or ~/.fretdex/fretdex.toml)")
	flags.String("out-dir", "./out", "directory for generated files")
	flags.String("log-level", "info", "debug, info, warn or error")
	flags.Bool("log-json", false, "structured json logs")

	cobra.CheckErr(v.BindPFlag("out_dir", flags.Lookup("out-dir")))
	cobra.CheckErr(v.BindPFlag("log.level", flags.Lookup("log-level")))
	cobra.CheckErr(v.BindPFlag("log.json", flags.Lookup("log-json")))
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
