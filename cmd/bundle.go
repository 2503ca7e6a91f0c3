package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/drengskapur/bundler/pkg/bundle"
	"github.com/drengskapur/bundler/pkg/config"
)

// scanRoot is the directory the bundle command collects files from.
const scanRoot = "."

const noFilesMessage = "ERROR: No files found to concatenate"

func newBundleCmd(logger *zap.Logger) *cobra.Command {
	bundleCmd := &cobra.Command{
		Use:   "bundle [extensions...]",
		Short: "Bundle code files to a single file",
		Long: `Bundle every file under the current directory whose extension matches one of
the --language values ("all" as the first value matches every file) into the
--output file. Extra positional arguments are treated as further extensions,
so "-l go py" and "-l go -l py" are equivalent.`,
		Example: `  bundler bundle -o bundle.txt -l go py --note --author Alice
  bundler bundle -o all.txt -l all -s language -r
  bundler bundle @responseFile.rsp`,
		RunE: func(cmd *cobra.Command, args []string) error {
			options, err := config.ResolveBundleOptions(cmd.Flags(), args)
			if err != nil {
				return err
			}
			logger.Debug("Resolved bundle options",
				zap.String("output", options.Output),
				zap.Strings("selectors", options.Selectors),
				zap.Bool("note", options.Note),
				zap.String("sort", options.Sort.String()),
				zap.Bool("removeEmptyLines", options.RemoveEmptyLines),
				zap.String("author", options.Author))

			paths, err := bundle.Collect(scanRoot, options.Selectors, logger)
			if err != nil {
				return fmt.Errorf("error creating bundle: %w", err)
			}

			written, err := bundle.Bundle(paths, options, logger)
			if errors.Is(err, bundle.ErrNoFilesFound) {
				fmt.Fprintln(cmd.OutOrStdout(), noFilesMessage)
				return nil
			}
			if err != nil {
				return fmt.Errorf("error creating bundle: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Bundle created successfully: "+written)
			return nil
		},
	}

	config.RegisterBundleFlags(bundleCmd.Flags())
	return bundleCmd
}
