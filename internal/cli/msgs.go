package cli

// Command descriptions
const (
	MsgRootShort = "Render lightweight markup documents as HTML"
	MsgRootLong  = `markhtml parses Markdown into a document tree and renders it as HTML.

Asides ("> Note: ...") and attribute span classes are opt-in, either with
flags or in $XDG_CONFIG_HOME/markhtml/config.toml.`

	MsgRenderShort = "Render a document as HTML"
	MsgRenderLong  = `Render reads Markdown from FILE, or from standard input when no file is
given, and writes the HTML fragment to standard output or to --output.`

	MsgPreviewShort = "Preview a document in the terminal"
	MsgPreviewLong  = `Preview styles the Markdown source for the terminal. When standard output
is not a terminal the plain "notty" style is used.`

	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
)

// Flag descriptions
const (
	MsgFlagVerbose          = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig           = "Config file (default $XDG_CONFIG_HOME/markhtml/config.toml)"
	MsgFlagOutput           = "Write HTML to this file instead of standard output"
	MsgFlagAsides           = "Render marked block quotes as <aside> elements"
	MsgFlagAttributeClass   = "Add class attributes decoded from attribute spans"
	MsgFlagDecoder          = "Attribute decoder: relaxed, strict or none"
	MsgFlagSpanAwareColumns = "Advance table columns by colspan"
	MsgFlagEscapeText       = "HTML-escape text while parsing"
	MsgFlagNoGFM            = "Disable GitHub Flavored Markdown extensions"
	MsgFlagStyle            = "Preview style: auto, dark, light, notty or a style file"
	MsgFlagWidth            = "Preview word wrap width, 0 disables wrapping"
)

// Errors
const (
	MsgErrReadInput   = "failed to read input"
	MsgErrWriteOutput = "failed to write output"
	MsgErrNoCommand   = "no command specified"
)
