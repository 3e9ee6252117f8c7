package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "holiday",
	Short: "A2A holiday booking system",
	Long: `Runs the flight, hotel and cab booking agents and the orchestrator that
books a complete holiday across them over the A2A protocol.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "path to the YAML config file")

	rootCmd.AddCommand(orchestratorCmd)
	rootCmd.AddCommand(agentCmd("flight"))
	rootCmd.AddCommand(agentCmd("hotel"))
	rootCmd.AddCommand(agentCmd("cab"))
	rootCmd.AddCommand(allCmd)
	rootCmd.AddCommand(bookCmd)
	rootCmd.AddCommand(statusCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	return config.Load(cfgFile)
}
