package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/rdevries/modechord/chord"
	"github.com/rdevries/modechord/constants"
	"github.com/rdevries/modechord/sample"
	"github.com/rdevries/modechord/util"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

var playKey string
var playMode string
var playSizes string

func init() {
	playCmd.Flags().StringVarP(&playKey, "key", "k", "", "key note, e.g. C or Eb")
	playCmd.Flags().StringVarP(&playMode, "mode", "m", "", "church mode, e.g. dorian")
	playCmd.Flags().StringVarP(&playSizes, "sizes", "s", "3-4", "chord sizes, e.g. 3-4-5")
	rootCmd.AddCommand(playCmd)
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Plays the catalog on a MIDI out port",
	Long:  `Plays every chord in the catalog on a live MIDI out port, one per beat`,
	Run: func(cmd *cobra.Command, args []string) {
		key, mode, err := pickKeyAndMode(playKey, playMode)
		cobra.CheckErr(err)
		sizes, err := chord.ParseSizes(playSizes)
		cobra.CheckErr(err)

		catalog, err := chord.Enumerate(key, mode, sizes)
		cobra.CheckErr(err)

		defer midi.CloseDriver()
		out, err := selectOutPort()
		cobra.CheckErr(err)
		cobra.CheckErr(out.Open())
		defer out.Close()

		beat := time.Duration(60.0 / float64(constants.Tempo) * float64(time.Second))
		for _, k := range util.SortedKeys(catalog) {
			fmt.Println(k)
			pitches, err := sample.Pitches(catalog[k])
			cobra.CheckErr(err)
			for _, p := range pitches {
				cobra.CheckErr(out.Send(midi.NoteOn(constants.Channel, p, constants.Velocity)))
			}
			time.Sleep(2 * beat)
			for _, p := range pitches {
				cobra.CheckErr(out.Send(midi.NoteOff(constants.Channel, p)))
			}
			time.Sleep(beat / 2)
		}
	},
}

func selectOutPort() (drivers.Out, error) {
	outPorts := midi.GetOutPorts()
	if len(outPorts) == 0 {
		return nil, errors.New("no output MIDI devices found")
	}
	if len(outPorts) == 1 {
		return outPorts[0], nil
	}
	prompt := promptui.Select{
		Label: "Output Device",
		Items: outPorts,
	}
	idx, _, err := prompt.Run()
	if err != nil {
		return nil, err
	}
	return outPorts[idx], nil
}
