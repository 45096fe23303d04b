package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rdevries/modechord/chord"
	"github.com/rdevries/modechord/constants"
	"github.com/rdevries/modechord/report"
	"github.com/spf13/cobra"
)

var reportKey string
var reportMode string
var reportSizes string

func init() {
	reportCmd.Flags().StringVarP(&reportKey, "key", "k", "", "key note, e.g. C or Eb")
	reportCmd.Flags().StringVarP(&reportMode, "mode", "m", "", "church mode, e.g. dorian")
	reportCmd.Flags().StringVarP(&reportSizes, "sizes", "s", "3-4", "chord sizes, e.g. 3-4-5")
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Writes a PDF report",
	Long:  `Writes a PDF report tabulating the chord catalog`,
	Run: func(cmd *cobra.Command, args []string) {
		key, mode, err := pickKeyAndMode(reportKey, reportMode)
		cobra.CheckErr(err)
		sizes, err := chord.ParseSizes(reportSizes)
		cobra.CheckErr(err)

		catalog, err := chord.Enumerate(key, mode, sizes)
		cobra.CheckErr(err)

		cobra.CheckErr(os.MkdirAll(constants.GetOutDir(), 0777))
		path := filepath.Join(constants.GetOutDir(), fmt.Sprintf("%v_%v.pdf", key, mode))
		cobra.CheckErr(report.Write(key, mode, catalog, path))
		fmt.Printf("Wrote report to %v\n", path)
	},
}
