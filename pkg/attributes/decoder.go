package attributes

import (
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/markhtml/pkg/errors"
)

// Decoder turns a braced record such as `{class: "x"}` into its fields.
type Decoder interface {
	Decode(record string) (map[string]interface{}, error)
}

// Decoder names accepted by DecoderFor
const (
	DecoderRelaxed = "relaxed"
	DecoderStrict  = "strict"
	DecoderNone    = "none"
)

var (
	// Relaxed is the default decoder.
	Relaxed Decoder = relaxedDecoder{}
	// Strict only accepts JSON objects.
	Strict Decoder = strictDecoder{}
	// Unsupported rejects every record.
	Unsupported Decoder = unsupportedDecoder{}
)

// DecoderFor returns the decoder registered under name.
func DecoderFor(name string) (Decoder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", DecoderRelaxed:
		return Relaxed, nil
	case DecoderStrict:
		return Strict, nil
	case DecoderNone:
		return Unsupported, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown attribute decoder %q", name).
			WithDetail("valid", []string{DecoderRelaxed, DecoderStrict, DecoderNone})
	}
}

type relaxedDecoder struct{}

func (relaxedDecoder) Decode(record string) (map[string]interface{}, error) {
	// TOML goes first: YAML would read `class = "x"` as one plain-scalar key,
	// and `class=foo` as a key with no value.
	if table, ok := decodeTOMLTable(record); ok {
		return table, nil
	}
	if table, ok := pairsAsTOML(record); ok {
		if fields, ok := decodeTOMLTable(table); ok {
			return fields, nil
		}
	}

	var fields map[string]interface{}
	if err := yaml.Unmarshal([]byte(record), &fields); err != nil {
		return nil, errors.Wrap(err, errors.ErrAttributeDecode, "failed to decode relaxed record")
	}
	if fields == nil {
		return nil, errors.New(errors.ErrAttributeDecode, "record is not a mapping")
	}
	return fields, nil
}

// decodeTOMLTable decodes a braced TOML inline table. TOML only has inline
// tables as values, so the record is bound to a key first.
func decodeTOMLTable(record string) (map[string]interface{}, bool) {
	var doc map[string]interface{}
	if err := toml.Unmarshal([]byte("record = "+record), &doc); err != nil {
		return nil, false
	}
	table, ok := doc["record"].(map[string]interface{})
	return table, ok
}

// pairsAsTOML rewrites a `{key=value, key="quoted"}` record as a TOML
// inline table. Bare values become strings. It reports false unless every
// comma-separated item is a bare key, an equals sign and a value.
func pairsAsTOML(record string) (string, bool) {
	body := strings.TrimSpace(record)
	body = strings.TrimSuffix(strings.TrimPrefix(body, "{"), "}")

	var items []string
	for {
		i := indexOutsideQuotes(body, ',')
		if i < 0 {
			items = append(items, body)
			break
		}
		items = append(items, body[:i])
		body = body[i+1:]
	}

	pairs := make([]string, 0, len(items))
	for _, item := range items {
		eq := indexOutsideQuotes(item, '=')
		if eq < 0 {
			return "", false
		}
		key := strings.TrimSpace(item[:eq])
		value := strings.TrimSpace(item[eq+1:])
		if !isBareKey(key) {
			return "", false
		}
		if value == "" || (value[0] != '"' && value[0] != '\'') {
			value = `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(value) + `"`
		}
		pairs = append(pairs, key+" = "+value)
	}
	return "{" + strings.Join(pairs, ", ") + "}", true
}

// indexOutsideQuotes returns the index of the first sep that is not inside
// a single- or double-quoted string, or -1.
func indexOutsideQuotes(s string, sep byte) int {
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote == '"' && c == '\\':
			i++
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == sep:
			return i
		}
	}
	return -1
}

func isBareKey(key string) bool {
	if key == "" {
		return false
	}
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
		default:
			return false
		}
	}
	return true
}

type strictDecoder struct{}

func (strictDecoder) Decode(record string) (map[string]interface{}, error) {
	var fields map[string]interface{}
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.UnmarshalFromString(record, &fields); err != nil {
		return nil, errors.Wrap(err, errors.ErrAttributeDecode, "failed to decode JSON record")
	}
	if fields == nil {
		return nil, errors.New(errors.ErrAttributeDecode, "record is not an object")
	}
	return fields, nil
}

type unsupportedDecoder struct{}

func (unsupportedDecoder) Decode(string) (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrDecoderUnavailable, "relaxed attribute decoding is not available")
}
