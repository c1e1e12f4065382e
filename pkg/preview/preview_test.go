package preview

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/markhtml/pkg/errors"
)

func TestNewRenderer(t *testing.T) {
	r := NewRenderer("", 0)
	assert.Equal(t, StyleAuto, r.Style)

	r = NewRenderer(StyleDark, 60)
	assert.Equal(t, StyleDark, r.Style)
	assert.Equal(t, 60, r.Width)
}

func TestResolveStyle(t *testing.T) {
	assert.Equal(t, StyleNoTTY, NewRenderer(StyleNoTTY, 0).ResolveStyle())
	assert.Contains(t, []string{StyleDark, StyleLight}, NewRenderer(StyleAuto, 0).ResolveStyle())
}

func TestRender(t *testing.T) {
	out, err := NewRenderer(StyleNoTTY, 40).Render("# Title\n\nSome *text* here.\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "text")
}

func TestRender_MissingStyle(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.json")

	_, err := NewRenderer(missing, 0).Render("x")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
