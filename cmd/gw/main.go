// Package main provides the command-line interface for the gw application.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/lerenn/workon/cmd/gw/internal/cli"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gw",
		Short: "Git workon - clone, open and finish up projects",
		Long: `Clone a project into a working directory, open it in an editor and, once done, ` +
			`remove it safely: nothing is removed while stashes, unpushed commits, unstaged changes ` +
			`or unpushed tags are left.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVarP(&cli.ConfigPath, "config", "c", "",
		"Specify a custom config file path (default <user config dir>/git_workon/config.yaml)")
	addVerboseFlag(rootCmd.PersistentFlags(), &cli.Verbose)

	rootCmd.AddCommand(createStartCmd(), createDoneCmd(), createConfigCmd())

	return rootCmd
}

func run(ctx context.Context, args []string) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)
	return cli.Report(ctx, cli.Logger(), err)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}
