package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "multilingual-chatbot/docs" // Swagger docs
)

// Build info, set with -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
)

var cfgFile string

// @title       Multilingual Chatbot API
// @description Session-based multilingual chat with a model-backed or template responder.
// @version     1
// @host        localhost:8000
// @schemes     http
func main() {
	rootCmd := &cobra.Command{
		Use:   "api",
		Short: "Multilingual chatbot HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), cfgFile)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (default ./config/config.yaml)")
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("multilingual-chatbot version %s (commit: %s)\n", version, commit)
		},
	}
}
