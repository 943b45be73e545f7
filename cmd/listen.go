package cmd

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/fretdex/logger"
	"github.com/jsphweid/fretdex/midi"
	"github.com/jsphweid/fretdex/render"
	"github.com/jsphweid/fretdex/view"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

func init() {
	listenCmd.Flags().String("port", "", "midi input port name (default first port)")
	cobra.CheckErr(v.BindPFlag("midi.in_port", listenCmd.Flags().Lookup("port")))
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Shows the triads held on a MIDI keyboard",
	Long: `Listens to a MIDI input and redraws the neck with every triad whose
notes are currently held down.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		defer gomidi.CloseDriver()

		port, err := midi.FindInPort(config.Midi.InPort)
		if err != nil {
			return err
		}

		held := midi.NewHeld()
		target := render.Terminal{W: cmd.OutOrStdout()}
		refresh := func() {
			if !logger.JSONOutput {
				pterm.Print("\033[H\033[2J")
			}
			if _, err := view.Refresh(held, target); err != nil {
				logger.Logger.Errorw("Could not redraw", "error", err)
			}
		}

		// chords arrive as a burst of note ons, redraw once per burst
		debounced := debounce.New(time.Duration(config.Midi.DebounceMs) * time.Millisecond)

		stop, err := midi.Listen(port, held, func() { debounced(refresh) })
		if err != nil {
			return err
		}
		defer stop()

		logger.Logger.Infow("Listening", "port", port.String())
		refresh()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		return nil
	},
}
