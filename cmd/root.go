package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "goarticle",
	Short: "goarticle is an article writing & interaction service.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("welcome to use goarticle, use `goarticle -h` for help")
	},
}

// Execute ...
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
