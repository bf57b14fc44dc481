package main

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort    = "Typographic text transformation as you type"
	MsgApplyShort   = "Run text through the active transformations"
	MsgApplyLong    = "Apply reads text from a file or stdin, feeds it through the transformation engine as if it were typed, and writes the result to stdout."
	MsgRulesShort   = "List the resolved transformation rules"
	MsgRulesLong    = "Rules prints the active rule set in evaluation order. Order matters: the first rule that matches wins."
	MsgVersionShort = "Print the typofix version"
	MsgConfigShort  = "Print the default configuration"
	MsgConfigLong   = "Config prints the built-in default configuration in TOML. Redirect it to typofix.toml to start a custom config file."

	// Errors
	MsgErrConfig  = "Error: could not load configuration: %v\n"
	MsgErrResolve = "Error: could not resolve rules: %v\n"
	MsgErrInput   = "Error: could not read input: %v\n"
)
