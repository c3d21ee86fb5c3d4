// Command lptool validates, normalizes, and (un)packs line-protocol data.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lptool",
	Short: "lptool works with line-protocol text and batch payloads",
	Long: "lptool validates and normalizes line-protocol text, and packs or unpacks\n" +
		"compressed batch payloads. Input is read from a file argument or stdin.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of lptool",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("lptool v0.1")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(packCmd)
	rootCmd.AddCommand(unpackCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
