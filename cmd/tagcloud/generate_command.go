package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cheggaaa/pb/v3"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tagcloud/internal/cloud"
	"tagcloud/internal/fileutil"
	"tagcloud/internal/fontscale"
	"tagcloud/internal/logging"
	"tagcloud/internal/pipeline"
	"tagcloud/internal/textio"
	"tagcloud/internal/tokenizer"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var countFlag int
	var outputFlag string
	var labelFlag string
	var preview bool

	cmd := &cobra.Command{
		Use:   "generate [input]",
		Short: "Generate an HTML tag cloud from a text document",
		Long: "Generate reads a plain-text document (a file path, or stdin when the\n" +
			"argument is omitted or \"-\"), counts word frequencies case-insensitively,\n" +
			"and writes an HTML tag cloud of the N most frequent words, ordered\n" +
			"alphabetically and font-sized by relative frequency.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			input := "-"
			if len(args) == 1 {
				input = args[0]
			}

			text, label, err := readSource(cmd, input)
			if err != nil {
				return err
			}
			if labelFlag != "" {
				label = labelFlag
			}

			n := countFlag
			if n == 0 {
				n = cfg.Cloud.DefaultCount
			}

			result, err := pipeline.Run(logger, text, pipeline.Params{
				Label:      label,
				N:          n,
				Separators: tokenizer.New(cfg.Cloud.Separators),
				Fonts: fontscale.Range{
					Min:     cfg.Cloud.MinFont,
					Max:     cfg.Cloud.MaxFont,
					Default: cfg.Cloud.DefaultFont,
				},
				Stylesheet: cfg.Output.Stylesheet,
			})
			if err != nil {
				return err
			}

			outPath := strings.TrimSpace(outputFlag)
			if outPath == "" {
				outPath = defaultOutputPath(input)
			}
			if err := fileutil.WriteAtomic(outPath, []byte(result.Document), 0o644); err != nil {
				return cloud.Wrap(cloud.ErrDestinationUnwritable, "cli", "write", outPath, err)
			}

			out := cmd.OutOrStdout()
			if preview {
				fmt.Fprintln(out, selectionTable(result.Ordered, result.Fonts))
			}
			fmt.Fprintf(out, "Wrote %s (%d words, %d distinct, top %d)\n",
				outPath, result.Words, result.Distinct, n)
			return nil
		},
	}

	cmd.Flags().IntVarP(&countFlag, "count", "n", 0, "Number of words to include (defaults to cloud.default_count)")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output HTML path (defaults to the input name with .html)")
	cmd.Flags().StringVar(&labelFlag, "label", "", "Label used in the document title (defaults to the input path)")
	cmd.Flags().BoolVar(&preview, "preview", false, "Print the selection as a table after writing")
	return cmd
}

// readSource acquires the full input text, joining lines with a single
// trailing space each. Reading a regular file on a terminal shows a progress
// bar on stderr; large corpora take a while.
func readSource(cmd *cobra.Command, input string) (text, label string, err error) {
	if input == "-" {
		text, err := textio.JoinLines(cmd.InOrStdin())
		if err != nil {
			return "", "", cloud.Wrap(cloud.ErrSourceUnavailable, "cli", "read", "stdin", err)
		}
		return text, "stdin", nil
	}

	f, err := os.Open(input)
	if err != nil {
		return "", "", cloud.Wrap(cloud.ErrSourceUnavailable, "cli", "read", input, err)
	}
	defer f.Close()

	var r io.Reader = f
	var bar *pb.ProgressBar
	if info, statErr := f.Stat(); statErr == nil && info.Mode().IsRegular() && stderrIsTerminal() {
		bar = pb.Full.Start64(info.Size())
		bar.SetWriter(os.Stderr)
		r = bar.NewProxyReader(f)
	}

	text, err = textio.JoinLines(r)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return "", "", cloud.Wrap(cloud.ErrSourceUnavailable, "cli", "read", input, err)
	}
	return text, input, nil
}

func defaultOutputPath(input string) string {
	if input == "-" {
		return "tagcloud.html"
	}
	base := strings.TrimSuffix(input, filepath.Ext(input))
	if base+".html" == input {
		return input + ".html"
	}
	return base + ".html"
}

func stderrIsTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
