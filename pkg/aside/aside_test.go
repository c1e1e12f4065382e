package aside_test

import (
	"testing"

	"github.com/arthur-debert/markhtml/pkg/aside"
	"github.com/arthur-debert/markhtml/pkg/markup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quote(text string, more ...markup.Node) *markup.BlockQuote {
	inlines := append([]markup.Node{markup.NewText(text)}, more...)
	return markup.NewBlockQuote(markup.NewParagraph(inlines...))
}

func firstText(t *testing.T, nodes []markup.Node) string {
	t.Helper()
	require.NotEmpty(t, nodes)
	p, ok := nodes[0].(*markup.Paragraph)
	require.True(t, ok, "first child should be a paragraph, got %T", nodes[0])
	require.NotEmpty(t, p.Children())
	text, ok := p.Children()[0].(*markup.Text)
	require.True(t, ok)
	return text.Value
}

func TestClassify_SingleWordMarker(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantKind string
		wantText string
	}{
		{"note", "Note: This is a note.", "note", "This is a note."},
		{"case insensitive", "WARNING: hot", "warning", "hot"},
		{"mixed case kind", "SeeAlso: other docs", "seealso", "other docs"},
		{"no space after colon", "Tip:use it", "tip", "use it"},
		{"leading space", "  Important: read", "important", "read"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := aside.Classify(quote(tt.text), aside.RequireSingleWordTag)
			require.True(t, ok)
			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.wantText, firstText(t, got.Children))
		})
	}
}

func TestClassify_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		quote *markup.BlockQuote
	}{
		{"compound sentence", quote("This is a compound sentence: It contains two clauses.")},
		{"unknown word", quote("Banana: yellow")},
		{"no colon", quote("Note this is not an aside")},
		{"space before colon", quote("Note : spaced")},
		{"empty tag", quote(": nothing")},
		{"multi word known kind", quote("See Also: other docs")},
		{"empty quote", markup.NewBlockQuote()},
		{"first child not paragraph", markup.NewBlockQuote(markup.NewCodeBlock("", "Note: code"))},
		{"first inline not text", markup.NewBlockQuote(markup.NewParagraph(
			markup.NewStrong(markup.NewText("Note:")), markup.NewText(" bold marker")))},
		{"empty paragraph", markup.NewBlockQuote(markup.NewParagraph())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := aside.Classify(tt.quote, aside.RequireSingleWordTag)
			assert.False(t, ok)
		})
	}

	_, ok := aside.Classify(nil, aside.RequireSingleWordTag)
	assert.False(t, ok)
}

func TestClassify_AnyLengthTag(t *testing.T) {
	got, ok := aside.Classify(quote("See Also: other docs"), aside.RequireAnyLengthTag)
	require.True(t, ok)
	assert.Equal(t, "seealso", got.Kind)
	assert.Equal(t, "other docs", firstText(t, got.Children))

	_, ok = aside.Classify(quote("This is a compound sentence: It contains two clauses."), aside.RequireAnyLengthTag)
	assert.False(t, ok, "prose before a colon is not a known kind")
}

func TestClassify_MarkerOnItsOwnLine(t *testing.T) {
	q := markup.NewBlockQuote(
		markup.NewParagraph(
			markup.NewText("Note:"),
			markup.NewSoftBreak(),
			markup.NewText("second line"),
		),
		markup.NewParagraph(markup.NewText("another paragraph")),
	)

	got, ok := aside.Classify(q, aside.RequireSingleWordTag)
	require.True(t, ok)
	require.Len(t, got.Children, 2)
	assert.Equal(t, "second line", firstText(t, got.Children))
}

func TestClassify_MarkerOnly(t *testing.T) {
	q := markup.NewBlockQuote(
		markup.NewParagraph(markup.NewText("Note:")),
		markup.NewParagraph(markup.NewText("body")),
	)

	got, ok := aside.Classify(q, aside.RequireSingleWordTag)
	require.True(t, ok)
	require.Len(t, got.Children, 1, "emptied first paragraph is dropped")
	assert.Equal(t, "body", firstText(t, got.Children))
}

func TestClassify_KeepsFollowingInlines(t *testing.T) {
	q := quote("Note: see ", markup.NewEmphasis(markup.NewText("this")))

	got, ok := aside.Classify(q, aside.RequireSingleWordTag)
	require.True(t, ok)
	p := got.Children[0].(*markup.Paragraph)
	require.Len(t, p.Children(), 2)
	assert.IsType(t, &markup.Emphasis{}, p.Children()[1])
}

func TestClassify_DoesNotMutateQuote(t *testing.T) {
	q := quote("Note: original")
	_, ok := aside.Classify(q, aside.RequireSingleWordTag)
	require.True(t, ok)

	original := q.Children()[0].(*markup.Paragraph).Children()[0].(*markup.Text)
	assert.Equal(t, "Note: original", original.Value)
}

func TestIsKnownKind(t *testing.T) {
	assert.True(t, aside.IsKnownKind("Note"))
	assert.True(t, aside.IsKnownKind("precondition"))
	assert.False(t, aside.IsKnownKind("sentence"))
}
