package core

// Style is the matching category an option exposes to the parser.
type Style int

const (
	StyleNull Style = iota
	// StyleArgument matches `--name value` and `--name=value`.
	StyleArgument
	// StyleCombined matches one letter of a combined short flag group such as `-abc`.
	StyleCombined
	// StyleBoolean matches a bare toggle such as `--debug`.
	StyleBoolean
	StylePos
	StyleCmd
	// StyleMain is the catch-all style, invoked for every positional slot.
	StyleMain
)

func (s Style) String() string {
	switch s {
	case StyleArgument:
		return "argument"
	case StyleCombined:
		return "combined"
	case StyleBoolean:
		return "boolean"
	case StylePos:
		return "pos"
	case StyleCmd:
		return "cmd"
	case StyleMain:
		return "main"
	default:
		return "null"
	}
}

// Action describes what a matched occurrence does to the stored value.
type Action int

const (
	ActionSet Action = iota
	ActionApp
	ActionNull
)

func (a Action) String() string {
	switch a {
	case ActionSet:
		return "set"
	case ActionApp:
		return "app"
	default:
		return "null"
	}
}
