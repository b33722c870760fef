package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRecentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recents",
		Short: "List recently opened workspaces, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cli, err := NewCLI(ctx)
			if err != nil {
				return err
			}
			defer closeCLI(cli)

			recents, err := cli.Workspace.Recents(ctx)
			if err != nil {
				return err
			}
			if len(recents) == 0 {
				fmt.Println("No recent workspaces.")
				return nil
			}

			for i, rec := range recents {
				fmt.Printf("%2d. %s  (%s)\n", i+1, rec.Path, rec.OpenedAt.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}
