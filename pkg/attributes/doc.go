// Package attributes interprets the raw payload of an inline attribute span.
//
// The payload is wrapped in braces and handed to a Decoder chosen at
// configuration time:
//
//   - Relaxed accepts TOML inline tables, then comma-separated key=value
//     pairs with bare or quoted values, then JSON plus unquoted keys and
//     bare values through YAML flow mappings.
//   - Strict accepts JSON only.
//   - Unsupported accepts nothing; it stands in for environments without
//     relaxed decoding.
//
// Decoding failures never surface to the caller of Interpreter.Class; the
// span is simply rendered without a class.
package attributes
