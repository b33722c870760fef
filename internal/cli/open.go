package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/atelier-ide/atelier/internal/application/usecase"
	"github.com/atelier-ide/atelier/internal/content"
	"github.com/atelier-ide/atelier/internal/domain/entity"
	"github.com/atelier-ide/atelier/internal/infrastructure/mainloop"
	"github.com/atelier-ide/atelier/internal/logging"
	"github.com/atelier-ide/atelier/internal/shell"
)

func newOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <path>",
		Short: "Open a workspace and record it as recent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return openWorkspace(cmd.Context(), args[0])
		},
	}
}

// openWorkspace runs a headless shell session: the workspace is acquired
// and recorded, the tree built, and a summary printed. No editor or web
// surface is attached.
func openWorkspace(ctx context.Context, path string) error {
	cli, err := NewCLI(ctx)
	if err != nil {
		return err
	}
	defer closeCLI(cli)

	// Live config reload for the rest of the session.
	if err := cli.Manager.Watch(); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("config watching unavailable")
	}

	loop := mainloop.NewLoop()
	go loop.Run(ctx)
	defer loop.Stop()

	cache := content.NewCache()
	panes := usecase.NewManagePanesUseCase(usecase.NewUUIDGenerator(), cache)
	panes.SetMinPaneFraction(cli.Config.Panes.MinWidthFraction)

	sh := shell.New(shell.Deps{
		Config:     cli.Config,
		Dispatcher: loop,
		Panes:      panes,
		Tree:       cli.Tree,
		Loader:     cli.Loader,
		Workspace:  cli.Workspace,
		Cache:      cache,
	})

	errCh := make(chan error, 1)
	loop.Dispatch(func() {
		errCh <- sh.OpenWorkspace(ctx, path)
	})
	if err := <-errCh; err != nil {
		return err
	}

	var tree *entity.WorkspaceNode
	done := make(chan struct{})
	loop.Dispatch(func() {
		tree = sh.Tree()
		close(done)
	})
	<-done

	fmt.Printf("Opened workspace %s\n", tree.Path)
	fmt.Printf("%d files", tree.FileCount())
	if first := tree.FirstFile(); first != nil {
		fmt.Printf(", first: %s", first.Path)
	}
	fmt.Println()

	printTree(tree, "")
	return nil
}

// printTree renders the first two levels of the workspace tree.
func printTree(node *entity.WorkspaceNode, indent string) {
	if len(indent) > 2 {
		return
	}
	for _, child := range node.Children {
		name := child.Name
		if child.IsDir {
			name += "/"
		}
		fmt.Printf("%s%s\n", indent, name)
		if child.IsDir {
			printTree(child, indent+"  ")
		}
	}
}

func closeCLI(cli *CLI) {
	if err := cli.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close database: %v\n", err)
	}
}
