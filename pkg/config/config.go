package config

import (
	"github.com/arthur-debert/markhtml/pkg/attributes"
	"github.com/arthur-debert/markhtml/pkg/errors"
	"github.com/arthur-debert/markhtml/pkg/htmlformat"
	"github.com/arthur-debert/markhtml/pkg/parser"
)

// Config is the complete markhtml configuration.
type Config struct {
	Render  Render  `koanf:"render"`
	Parser  Parser  `koanf:"parser"`
	Preview Preview `koanf:"preview"`
}

// Render holds the HTML formatter switches.
type Render struct {
	ParseAsides               bool   `koanf:"parse_asides"`
	ParseInlineAttributeClass bool   `koanf:"parse_inline_attribute_class"`
	AttributeDecoder          string `koanf:"attribute_decoder"`
	SpanAwareColumns          bool   `koanf:"span_aware_columns"`
}

// Parser holds the Markdown parser switches.
type Parser struct {
	GFM        bool `koanf:"gfm"`
	EscapeText bool `koanf:"escape_text"`
}

// Preview holds the terminal preview settings.
type Preview struct {
	Style string `koanf:"style"`
	Width int    `koanf:"width"`
}

// Validate reports the first invalid value.
func (c *Config) Validate() error {
	if _, err := attributes.DecoderFor(c.Render.AttributeDecoder); err != nil {
		return errors.Wrap(err, errors.ErrConfigInvalid, "invalid render.attribute_decoder").
			WithDetail("key", "render.attribute_decoder")
	}
	if c.Preview.Width < 0 {
		return errors.Newf(errors.ErrConfigInvalid, "preview.width must not be negative, got %d", c.Preview.Width).
			WithDetail("key", "preview.width")
	}
	return nil
}

// FormatOptions converts the render section into formatter options.
func (c *Config) FormatOptions() (htmlformat.Options, error) {
	decoder, err := attributes.DecoderFor(c.Render.AttributeDecoder)
	if err != nil {
		return htmlformat.Options{}, errors.Wrap(err, errors.ErrConfigInvalid, "invalid render.attribute_decoder").
			WithDetail("key", "render.attribute_decoder")
	}
	return htmlformat.Options{
		ParseAsides:               c.Render.ParseAsides,
		ParseInlineAttributeClass: c.Render.ParseInlineAttributeClass,
		SpanAwareColumns:          c.Render.SpanAwareColumns,
		AttributeDecoder:          decoder,
	}, nil
}

// ParserOptions converts the parser section into parser options.
func (c *Config) ParserOptions() parser.Options {
	return parser.Options{
		GFM:        c.Parser.GFM,
		EscapeText: c.Parser.EscapeText,
	}
}
