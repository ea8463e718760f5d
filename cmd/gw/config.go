package main

import (
	"github.com/lerenn/workon/cmd/gw/internal/cli"
	"github.com/lerenn/workon/pkg/workon"
	"github.com/spf13/cobra"
)

func createConfigCmd() *cobra.Command {
	var editor string

	configCmd := &cobra.Command{
		Use:   "config [-e editor]",
		Short: "Alter the configuration",
		Long: `Create the configuration file from the default template if it does not exist, then open it.
The template format follows the file extension: .yaml, .yml, .json, .jsonc or .toml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := cli.NewSession(cli.SessionOpts{TolerateInvalidConfig: true})
			if err != nil {
				return err
			}

			return session.Workon.EditConfig(cmd.Context(), workon.EditConfigParams{
				Editor: cli.ResolveEditor(editor, session.Config),
			})
		},
	}

	addEditorFlag(configCmd.Flags(), &editor)

	return configCmd
}
