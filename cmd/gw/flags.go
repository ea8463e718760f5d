package main

import "github.com/spf13/pflag"

func addVerboseFlag(flags *pflag.FlagSet, verbose *int) {
	flags.CountVarP(verbose, "verbose", "v", "Get more information of what's going on (repeatable)")
}

func addDirectoryFlag(flags *pflag.FlagSet, directory *string) {
	flags.StringVarP(directory, "directory", "d", "", "Working directory (default: \"dir\" from the configuration)")
}

func addEditorFlag(flags *pflag.FlagSet, editor *string) {
	flags.StringVarP(editor, "editor", "e", "",
		"Editor used to open a project or the configuration (default: \"editor\" from the configuration, then $EDITOR, vi and vim)")
}
