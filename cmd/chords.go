package cmd

import (
	"fmt"
	"strings"

	"github.com/rdevries/modechord/chord"
	"github.com/rdevries/modechord/scale"
	"github.com/rdevries/modechord/util"
	"github.com/spf13/cobra"
)

var chordsKey string
var chordsMode string
var chordsSizes string

func init() {
	chordsCmd.Flags().StringVarP(&chordsKey, "key", "k", "", "key note, e.g. C or Eb")
	chordsCmd.Flags().StringVarP(&chordsMode, "mode", "m", "", "church mode, e.g. dorian")
	chordsCmd.Flags().StringVarP(&chordsSizes, "sizes", "s", "3-4", "chord sizes, e.g. 3-4-5")
	rootCmd.AddCommand(chordsCmd)
}

var chordsCmd = &cobra.Command{
	Use:   "chords",
	Short: "Prints the chord catalog",
	Long:  `Prints the scale and chord catalog for a key and mode`,
	Run: func(cmd *cobra.Command, args []string) {
		key, mode, err := pickKeyAndMode(chordsKey, chordsMode)
		cobra.CheckErr(err)
		sizes, err := chord.ParseSizes(chordsSizes)
		cobra.CheckErr(err)

		modeScale, _, err := scale.Resolve(key, mode)
		cobra.CheckErr(err)
		catalog, err := chord.Enumerate(key, mode, sizes)
		cobra.CheckErr(err)

		fmt.Printf("%v %v scale: %v\n", key, mode, strings.Join(modeScale, " "))
		for _, k := range util.SortedKeys(catalog) {
			fmt.Printf("%-32v %v\n", k, strings.Join(util.FilterBlank(catalog[k]), " "))
		}
	},
}
