package cli

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/markhtml/pkg/preview"
)

var previewBindings = map[string]string{
	"style": "preview.style",
	"width": "preview.width",
}

func newPreviewCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: MsgPreviewShort,
		Long:  MsgPreviewLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags, previewBindings)
			if err != nil {
				return err
			}

			src, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			style := cfg.Preview.Style
			if style == preview.StyleAuto && !isTerminal(cmd.OutOrStdout()) {
				style = preview.StyleNoTTY
			}

			out, err := preview.NewRenderer(style, cfg.Preview.Width).Render(string(src))
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), "", out)
		},
	}

	cmd.Flags().String("style", "", MsgFlagStyle)
	cmd.Flags().Int("width", 0, MsgFlagWidth)

	return cmd
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
