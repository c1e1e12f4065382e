package htmlformat

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/markhtml/pkg/attributes"
	"github.com/arthur-debert/markhtml/pkg/logging"
)

// Options configure one Format call. The zero value disables every optional
// behavior.
type Options struct {
	// ParseAsides renders block quotes opening with a marker such as
	// "Note:" as <aside data-kind="note">.
	ParseAsides bool

	// ParseInlineAttributeClass adds a class attribute to attribute spans
	// whose payload decodes to a record with a string "class" field.
	ParseInlineAttributeClass bool

	// SpanAwareColumns advances the table column counter by a cell's colspan
	// instead of by one. Off by default, which keeps the established output:
	// a cell after a colspan=2 cell looks up the alignment of the column
	// directly after the wide cell's first column.
	SpanAwareColumns bool

	// AttributeDecoder decodes attribute payloads. Nil means attributes.Relaxed.
	AttributeDecoder attributes.Decoder

	// Logger receives trace events for degraded nodes. Nil means the
	// "htmlformat" component logger, which discards everything until
	// logging.SetupLogger or logging.UseLogger runs.
	Logger *zerolog.Logger
}

func (o Options) logger() zerolog.Logger {
	if o.Logger != nil {
		return *o.Logger
	}
	return logging.GetLogger("htmlformat")
}
