package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/markhtml/pkg/errors"
)

// setupEnv keeps config lookups and the log file inside a temp dir.
func setupEnv(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "config"))
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(home, "etc"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(home, "state"))
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return home
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestRender_Stdin(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "# Hi\n\nSome *text*.\n", "render")
	require.NoError(t, err)
	assert.Equal(t, "<h1>Hi</h1>\n<p>Some <em>text</em>.</p>\n", out)
}

func TestRender_AsidesFlag(t *testing.T) {
	setupEnv(t)
	src := "> Note: careful\n"

	out, err := run(t, src, "render")
	require.NoError(t, err)
	assert.Equal(t, "<blockquote>\n<p>Note: careful</p>\n</blockquote>\n", out)

	out, err = run(t, src, "render", "--asides")
	require.NoError(t, err)
	assert.Equal(t, "<aside data-kind=\"note\">\n<p>careful</p>\n</aside>\n", out)
}

func TestRender_ConfigFile(t *testing.T) {
	home := setupEnv(t)
	path := filepath.Join(home, "markhtml.toml")
	require.NoError(t, os.WriteFile(path, []byte("[render]\nparse_asides = true\n"), 0644))

	out, err := run(t, "> Tip: hello\n", "--config", path, "render")
	require.NoError(t, err)
	assert.Equal(t, "<aside data-kind=\"tip\">\n<p>hello</p>\n</aside>\n", out)
}

func TestRender_FileToFile(t *testing.T) {
	home := setupEnv(t)
	in := filepath.Join(home, "in.md")
	outPath := filepath.Join(home, "out.html")
	require.NoError(t, os.WriteFile(in, []byte("---\n"), 0644))

	out, err := run(t, "", "render", in, "-o", outPath)
	require.NoError(t, err)
	assert.Empty(t, out)

	written, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "<hr />\n", string(written))
}

func TestRender_EscapeText(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "a &lt; b\n", "render")
	require.NoError(t, err)
	assert.Equal(t, "<p>a < b</p>\n", out)

	out, err = run(t, "a &lt; b\n", "render", "--escape-text")
	require.NoError(t, err)
	assert.Equal(t, "<p>a &lt; b</p>\n", out)
}

func TestRender_Errors(t *testing.T) {
	home := setupEnv(t)

	t.Run("missing file", func(t *testing.T) {
		_, err := run(t, "", "render", filepath.Join(home, "missing.md"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	})

	t.Run("unknown decoder", func(t *testing.T) {
		_, err := run(t, "x", "render", "--decoder", "xml")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
	})

	t.Run("too many arguments", func(t *testing.T) {
		_, err := run(t, "", "render", "a.md", "b.md")
		require.Error(t, err)
	})
}

func TestPreview(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "# Preview title\n", "preview", "--width", "40")
	require.NoError(t, err)
	assert.Contains(t, out, "Preview title")
}

func TestVersion(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "markhtml version")
	assert.Contains(t, out, "commit:")
}

func TestCompletion(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "markhtml")

	_, err = run(t, "", "completion", "tcsh")
	assert.Error(t, err)
}

func TestRoot_NoCommand(t *testing.T) {
	setupEnv(t)

	_, err := run(t, "")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
