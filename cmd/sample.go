package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/rdevries/modechord/chord"
	"github.com/rdevries/modechord/constants"
	"github.com/rdevries/modechord/sample"
	"github.com/spf13/cobra"
)

var sampleKey string
var sampleMode string
var sampleSizes string

func init() {
	sampleCmd.Flags().StringVarP(&sampleKey, "key", "k", "", "key note, e.g. C or Eb")
	sampleCmd.Flags().StringVarP(&sampleMode, "mode", "m", "", "church mode, e.g. dorian")
	sampleCmd.Flags().StringVarP(&sampleSizes, "sizes", "s", "3-4", "chord sizes, e.g. 3-4-5")
	rootCmd.AddCommand(sampleCmd)
}

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Writes MIDI samples",
	Long:  `Writes one MIDI sample file per chord in the catalog`,
	Run: func(cmd *cobra.Command, args []string) {
		key, mode, err := pickKeyAndMode(sampleKey, sampleMode)
		cobra.CheckErr(err)
		sizes, err := chord.ParseSizes(sampleSizes)
		cobra.CheckErr(err)

		catalog, err := chord.Enumerate(key, mode, sizes)
		cobra.CheckErr(err)

		dir := filepath.Join(constants.GetOutDir(), fmt.Sprintf("%v_%v", key, mode))
		cobra.CheckErr(sample.WriteCatalog(catalog, dir))
		fmt.Printf("Wrote %v samples to %v\n", len(catalog), dir)
	},
}
