package main

import (
	"github.com/lerenn/workon/cmd/gw/internal/cli"
	"github.com/lerenn/workon/pkg/workon"
	"github.com/spf13/cobra"
)

func createDoneCmd() *cobra.Command {
	var (
		directory string
		force     bool
	)

	doneCmd := &cobra.Command{
		Use:   "done [project] [-d dir] [-f]",
		Short: "Finish your work and clean the working directory",
		Long: `Remove the project from the working directory, or every project when none is given.

A project is kept while it has stashes, unpushed commits, unstaged changes or unpushed tags,
unless --force is used. Without a project, files and symbolic links left in the working
directory are removed as well.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := cli.NewSession()
			if err != nil {
				return err
			}

			dir, err := cli.ResolveDirectory(session.FS, directory, session.Config)
			if err != nil {
				return err
			}

			var project string
			if len(args) == 1 {
				project = args[0]
			}

			return session.Workon.Done(cmd.Context(), workon.DoneParams{
				Directory: dir,
				Project:   project,
				Force:     force,
			})
		},
	}

	addDirectoryFlag(doneCmd.Flags(), &directory)
	doneCmd.Flags().BoolVarP(&force, "force", "f", false,
		"Remove the project even if there are unpushed/unstaged changes or stashes")

	return doneCmd
}
