package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/drengskapur/bundler/pkg/rsp"
)

func newCreateRspCmd(logger *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "create-rsp",
		Short: "Create a response file for the bundle command",
		Long: `Ask for each bundle option in turn and write the answers to ` + rsp.DefaultFileName + `
in the current directory. Replay it with "bundler bundle @` + rsp.DefaultFileName + `".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			answers, err := rsp.NewBuilder(cmd.InOrStdin(), cmd.OutOrStdout()).Collect()
			if err != nil {
				return fmt.Errorf("error creating response file: %w", err)
			}

			written, err := rsp.Write(rsp.DefaultFileName, answers)
			if err != nil {
				logger.Error("Failed to write response file", zap.String("file", rsp.DefaultFileName), zap.Error(err))
				return fmt.Errorf("error creating response file: %w", err)
			}
			logger.Debug("Wrote response file", zap.String("file", written), zap.Strings("lines", answers.Lines()))

			fmt.Fprintln(cmd.OutOrStdout(), "Response file created successfully: "+written)
			return nil
		},
	}
}
