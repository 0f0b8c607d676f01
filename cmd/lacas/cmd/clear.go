package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lacas-dev/lacas"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear a fresh session and print the acknowledgement record",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine := lacas.New()
		fmt.Println(engine.Clear())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
}
