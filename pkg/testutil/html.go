package testutil

import (
	"testing"

	"github.com/beevik/etree"
)

// ParseHTML parses an HTML fragment as XML below a synthetic <root> element.
// The fragment must be well formed: every tag closed, void elements written
// as <br />, no undeclared entities.
func ParseHTML(t testing.TB, fragment string) *etree.Element {
	t.Helper()

	doc := etree.NewDocument()
	if err := doc.ReadFromString("<root>" + fragment + "</root>"); err != nil {
		t.Fatalf("HTML is not well formed: %v\n%s", err, fragment)
	}
	return doc.Root()
}

// AssertWellFormed fails the test when fragment does not parse as XML.
func AssertWellFormed(t testing.TB, fragment string) {
	t.Helper()
	ParseHTML(t, fragment)
}

// FindElements returns the elements under root matching an etree path such
// as "//td" or "./table/thead/tr/th".
func FindElements(t testing.TB, root *etree.Element, path string) []*etree.Element {
	t.Helper()

	compiled, err := etree.CompilePath(path)
	if err != nil {
		t.Fatalf("invalid element path %q: %v", path, err)
	}
	return root.FindElementsPath(compiled)
}

// Attr returns the value of attribute key on el, and whether it is present.
func Attr(el *etree.Element, key string) (string, bool) {
	attr := el.SelectAttr(key)
	if attr == nil {
		return "", false
	}
	return attr.Value, true
}
