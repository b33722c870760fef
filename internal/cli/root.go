// Package cli provides the command-line interface for atelier.
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/atelier-ide/atelier/internal/application/usecase"
	"github.com/atelier-ide/atelier/internal/config"
	"github.com/atelier-ide/atelier/internal/infrastructure/filesystem"
	"github.com/atelier-ide/atelier/internal/infrastructure/persistence/sqlite"
	"github.com/atelier-ide/atelier/internal/infrastructure/scope"
	"github.com/atelier-ide/atelier/internal/logging"
)

// CLI holds the shared dependencies of all subcommands.
type CLI struct {
	DB        *sql.DB
	Manager   *config.Manager
	Config    *config.Config
	Workspace *usecase.ManageWorkspaceUseCase
	Tree      *usecase.BuildTreeUseCase
	Loader    *usecase.LoadContentUseCase
}

// NewCLI loads configuration and opens the database.
func NewCLI(ctx context.Context) (*CLI, error) {
	manager, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize configuration: %w", err)
	}
	if err := manager.Load(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg := manager.Get()

	db, err := sqlite.NewConnection(ctx, cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	fs := filesystem.New()
	return &CLI{
		DB:      db,
		Manager: manager,
		Config:  cfg,
		Workspace: usecase.NewManageWorkspaceUseCase(
			fs,
			scope.New(),
			sqlite.NewRecentsRepo(db),
			sqlite.NewPreferencesRepo(db),
		),
		Tree:   usecase.NewBuildTreeUseCase(fs, cfg.Workspace.MaxTreeDepth),
		Loader: usecase.NewLoadContentUseCase(fs),
	}, nil
}

// Close releases the database connection and any held workspace lease.
func (c *CLI) Close() error {
	c.Workspace.Close()
	return sqlite.Close(c.DB)
}

// NewRootCmd creates the root command for atelier.
func NewRootCmd(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "atelier [path]",
		Short: "A pane-based workspace shell",
		Long:  `A desktop workspace shell with split panes, tabbed editing, and a recent-workspaces list.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return openWorkspace(cmd.Context(), args[0])
			}
			return cmd.Help()
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("atelier %s\n", version)
			fmt.Printf("commit: %s\n", commit)
			fmt.Printf("built: %s\n", buildDate)
		},
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newOpenCmd())
	rootCmd.AddCommand(newRecentsCmd())

	return rootCmd
}

// Execute runs the root command with a logger-carrying context.
func Execute(version, commit, buildDate string) {
	logger := logging.NewFromEnv()
	ctx := logging.WithContext(context.Background(), logger)

	if err := NewRootCmd(version, commit, buildDate).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
