package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/app"
)

var orchestratorCmd = &cobra.Command{
	Use:   "orchestrator",
	Short: "Run the holiday orchestrator",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := app.NewLogger(cfg.Log, os.Stdout)
		srv, err := app.NewOrchestrator(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		return app.Serve(cmd.Context(), logger, srv)
	},
}

func agentCmd(service string) *cobra.Command {
	return &cobra.Command{
		Use:   service,
		Short: "Run the " + service + " booking agent",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger := app.NewLogger(cfg.Log, os.Stdout)
			srv, err := app.NewAgent(service, cfg, logger)
			if err != nil {
				return err
			}
			return app.Serve(cmd.Context(), logger, srv)
		},
	}
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run the three agents and the orchestrator in one process",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := app.NewLogger(cfg.Log, os.Stdout)

		var servers []*app.Server
		for _, service := range []string{"cab", "flight", "hotel"} {
			srv, err := app.NewAgent(service, cfg, logger)
			if err != nil {
				return err
			}
			servers = append(servers, srv)
		}
		orch, err := app.NewOrchestrator(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		return app.Serve(cmd.Context(), logger, append(servers, orch)...)
	},
}
