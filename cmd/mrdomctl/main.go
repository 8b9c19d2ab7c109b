package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "mrdomctl",
		Short:         "Talk to the MrDom SDR agents from the terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(suggestCmd())
	rootCmd.AddCommand(askCmd(newUseCase))
	rootCmd.AddCommand(agentsCmd(newUseCase))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
