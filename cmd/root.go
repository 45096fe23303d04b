package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "modechord",
	Short: "Church-mode chord catalog generator",
	Long:  `Computes the diatonic scale and chords of a key in any church mode and renders them as MIDI samples, a PDF report or JSON.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
