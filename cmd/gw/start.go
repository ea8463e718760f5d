package main

import (
	"github.com/lerenn/workon/cmd/gw/internal/cli"
	"github.com/lerenn/workon/pkg/workon"
	"github.com/spf13/cobra"
)

func createStartCmd() *cobra.Command {
	var (
		directory string
		sources   []string
		noOpen    bool
		editor    string
	)

	startCmd := &cobra.Command{
		Use:   "start <project> [-d dir] [-s source...] [-n] [-e editor]",
		Short: "Start your work on a project",
		Long: `Clone the project from the first source that works into the working directory, then open it.
A project already in the working directory is only opened.

Sources given with -s are tried before the configured ones. The project is cloned from
<source>/<project>.git.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := cli.NewSession()
			if err != nil {
				return err
			}

			dir, err := cli.ResolveDirectory(session.FS, directory, session.Config)
			if err != nil {
				return err
			}

			resolvedSources, err := cli.ResolveSources(sources, session.Config)
			if err != nil {
				return err
			}

			return session.Workon.Start(cmd.Context(), workon.StartParams{
				Directory: dir,
				Project:   args[0],
				Sources:   resolvedSources,
				NoOpen:    noOpen,
				Editor:    cli.ResolveEditor(editor, session.Config),
			})
		},
	}

	addDirectoryFlag(startCmd.Flags(), &directory)
	addEditorFlag(startCmd.Flags(), &editor)
	startCmd.Flags().StringSliceVarP(&sources, "source", "s", nil, "Git source including username (repeatable)")
	startCmd.Flags().BoolVarP(&noOpen, "no-open", "n", false, "Don't open the project")

	return startCmd
}
