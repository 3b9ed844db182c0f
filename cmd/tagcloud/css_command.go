package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tagcloud/internal/config"
	"tagcloud/internal/fileutil"
	"tagcloud/internal/render"
)

func newCSSCommand(ctx *commandContext) *cobra.Command {
	cssCmd := &cobra.Command{
		Use:   "css",
		Short: "Companion stylesheet utilities",
	}

	cssCmd.AddCommand(newCSSInitCommand(ctx))

	return cssCmd
}

func newCSSInitCommand(ctx *commandContext) *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the companion stylesheet referenced by generated documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			target := strings.TrimSpace(targetPath)
			if target == "" {
				target = cfg.Output.Stylesheet
			}
			expanded, err := config.ExpandPath(target)
			if err != nil {
				return fmt.Errorf("resolve stylesheet path: %w", err)
			}
			target = expanded

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("stylesheet already exists at %s (use --overwrite to replace it)", target)
				} else if err != nil && !os.IsNotExist(err) {
					return fmt.Errorf("check stylesheet path: %w", err)
				}
			}

			if err := fileutil.WriteAtomic(target, []byte(render.Stylesheet()), 0o644); err != nil {
				return fmt.Errorf("write stylesheet: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote stylesheet to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the stylesheet (defaults to output.stylesheet)")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing stylesheet if present")
	return cmd
}
