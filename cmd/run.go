package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/abhisek/dojo/internal/app"
	"github.com/abhisek/dojo/internal/appdir"
	"github.com/abhisek/dojo/internal/checker"
	"github.com/abhisek/dojo/internal/config"
	"github.com/abhisek/dojo/internal/logging"
	"github.com/abhisek/dojo/internal/workshop"
)

// runApp resolves the workshops root, loads saved state and stores, and
// launches the TUI.
func runApp(cmd *cobra.Command) error {
	root, err := resolveWorkshopsRoot(cmd)
	if err != nil {
		return fmt.Errorf("resolve workshops root: %w", err)
	}

	dataDir, err := appdir.Data()
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}
	closer, err := logging.Init(dataDir)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer closer.Close()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	status, err := config.LoadStatus(root)
	if err != nil {
		return fmt.Errorf("load status: %w", err)
	}
	stores, err := workshop.LoadAll(root)
	if err != nil {
		return fmt.Errorf("load workshops: %w", err)
	}
	log.Info("loaded workshops", "root", root, "count", len(stores))

	tools := checker.DetectTools()
	if tools.PythonErr != nil {
		log.Warn("python unavailable, checks disabled", "err", tools.PythonErr)
	}
	if tools.ComposeErr != nil {
		log.Warn("docker compose unavailable, solution checks disabled", "err", tools.ComposeErr)
	}

	return app.Run(app.Options{
		Stores: stores,
		Cfg:    cfg,
		Status: status,
		Tools:  tools,
	})
}
