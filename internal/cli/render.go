package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/markhtml/pkg/errors"
	"github.com/arthur-debert/markhtml/pkg/htmlformat"
	"github.com/arthur-debert/markhtml/pkg/logging"
)

// renderBindings maps render flags to config keys.
var renderBindings = map[string]string{
	"asides":             "render.parse_asides",
	"attribute-class":    "render.parse_inline_attribute_class",
	"decoder":            "render.attribute_decoder",
	"span-aware-columns": "render.span_aware_columns",
	"escape-text":        "parser.escape_text",
}

func newRenderCmd(flags *globalFlags) *cobra.Command {
	var (
		output string
		noGFM  bool
	)

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: MsgRenderShort,
		Long:  MsgRenderLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.render")
			done := logging.LogOperationStart(logger, "render")
			defer done()

			cfg, err := loadConfig(cmd, flags, renderBindings)
			if err != nil {
				return err
			}
			opts, err := cfg.FormatOptions()
			if err != nil {
				return err
			}
			parseOpts := cfg.ParserOptions()
			if noGFM {
				parseOpts.GFM = false
			}

			src, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			html, err := htmlformat.FormatMarkdown(src, opts, parseOpts)
			if err != nil {
				return err
			}

			logger.Info().
				Int("bytes_in", len(src)).
				Int("bytes_out", len(html)).
				Bool("asides", opts.ParseAsides).
				Msg("Rendered document")

			return writeOutput(cmd.OutOrStdout(), output, html)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	cmd.Flags().Bool("asides", false, MsgFlagAsides)
	cmd.Flags().Bool("attribute-class", false, MsgFlagAttributeClass)
	cmd.Flags().String("decoder", "", MsgFlagDecoder)
	cmd.Flags().Bool("span-aware-columns", false, MsgFlagSpanAwareColumns)
	cmd.Flags().Bool("escape-text", false, MsgFlagEscapeText)
	cmd.Flags().BoolVar(&noGFM, "no-gfm", false, MsgFlagNoGFM)

	return cmd
}

func writeOutput(stdout io.Writer, path, html string) error {
	if path == "" {
		if _, err := io.WriteString(stdout, html); err != nil {
			return errors.Wrap(err, errors.ErrFileWrite, MsgErrWriteOutput)
		}
		return nil
	}

	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, MsgErrWriteOutput).WithDetail("path", path)
	}
	return nil
}
