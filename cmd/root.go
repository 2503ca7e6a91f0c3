package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/drengskapur/bundler/pkg/rsp"
)

// DebugFlag enables debug logging. main inspects the raw arguments for it
// because the logger is built before cobra parses anything.
const DebugFlag = "debug"

// NewRootCmd builds the command tree. Subcommands log through logger.
func NewRootCmd(logger *zap.Logger) *cobra.Command {
	if logger == nil {
		logger = zap.NewNop()
	}

	rootCmd := &cobra.Command{
		Use:   "bundler",
		Short: "bundler concatenates source files into a single file",
		Long: `bundler collects files by extension from the current directory tree and
writes them into one output file, optionally noting where each file came from.

Arguments of the form @file are replaced by the flags stored in that response
file, such as the one written by "bundler create-rsp".`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().Bool(DebugFlag, false, "Enable debug logging")

	rootCmd.AddCommand(
		newBundleCmd(logger),
		newCreateRspCmd(logger),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute expands response-file arguments and runs the command tree.
func Execute(logger *zap.Logger, args []string) error {
	expanded, err := rsp.ExpandArgs(args)
	if err != nil {
		return err
	}
	if logger != nil {
		logger.Debug("Expanded arguments", zap.Strings("args", expanded))
	}

	rootCmd := NewRootCmd(logger)
	rootCmd.SetArgs(expanded)
	return rootCmd.Execute()
}
