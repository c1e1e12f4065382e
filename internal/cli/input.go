package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/markhtml/pkg/config"
	"github.com/arthur-debert/markhtml/pkg/errors"
)

// readInput returns the contents of the single file argument, or of the
// command's standard input when there is none.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrFileRead, MsgErrReadInput).
				WithDetail("path", "-")
		}
		return data, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		code := errors.ErrFileRead
		if os.IsNotExist(err) {
			code = errors.ErrNotFound
		}
		return nil, errors.Wrap(err, code, MsgErrReadInput).WithDetail("path", args[0])
	}
	return data, nil
}

// loadConfig loads the layered configuration with overrides for every flag
// the user actually set.
func loadConfig(cmd *cobra.Command, flags *globalFlags, bindings map[string]string) (*config.Config, error) {
	overrides := make(map[string]interface{})
	for flag, key := range bindings {
		f := cmd.Flags().Lookup(flag)
		if f == nil || !f.Changed {
			continue
		}
		overrides[key] = f.Value.String()
	}
	return config.Load(config.LoadOptions{Path: flags.configPath, Overrides: overrides})
}
