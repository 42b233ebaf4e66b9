package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the current version of the botwatch CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("botwatch version %s\n", version)
		fmt.Println("Performance reporting for trading bot logs")
		fmt.Println("https://github.com/rustyeddy/botwatch")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
