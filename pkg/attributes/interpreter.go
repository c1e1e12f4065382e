package attributes

import (
	"strings"

	"github.com/rs/zerolog"
)

const classField = "class"

// Interpreter extracts a class value from attribute payloads.
type Interpreter struct {
	decoder Decoder
	logger  zerolog.Logger
}

// NewInterpreter creates an interpreter. A nil decoder means Relaxed.
func NewInterpreter(decoder Decoder, logger zerolog.Logger) *Interpreter {
	if decoder == nil {
		decoder = Relaxed
	}
	return &Interpreter{decoder: decoder, logger: logger}
}

// Class returns the string value of the payload's class field.
// It reports false when the payload cannot be decoded, has no class field,
// or the field is not a string.
func (i *Interpreter) Class(payload string) (string, bool) {
	fields, err := i.decoder.Decode("{" + payload + "}")
	if err != nil {
		i.logger.Trace().Err(err).Str("payload", payload).Msg("Skipping class extraction")
		return "", false
	}

	value, ok := fields[classField]
	if !ok {
		return "", false
	}
	class, ok := value.(string)
	if !ok {
		i.logger.Trace().Str("payload", payload).Msg("Class field is not a string")
		return "", false
	}
	return class, true
}

// EscapePayload prefixes every double quote in payload with a backslash.
func EscapePayload(payload string) string {
	return strings.ReplaceAll(payload, `"`, `\"`)
}
