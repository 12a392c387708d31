package soya

import (
	"github.com/chriso345/soya/derive"
	"github.com/chriso345/soya/display"
)

// Parse parses os.Args into the provided target struct.
//
// The target must be a pointer to a struct. Every exported field becomes an
// option whose behaviour follows from its type: bool is a toggle, *T is
// optional, []T collects every occurrence, infer.Result[T] keeps conversion
// failures instead of aborting. Struct tags refine the declaration.
//
// If the root struct embeds Help and `-h` or `--help` is passed, Parse
// prints the usage text and exits the program.
//
// Usage:
//
//	target := struct {
//		soya.Soya `name:"git"`
//		soya.Help
//
//		Debug bool    `alias:"-d" help:"Enable debug output"`
//		Depth *uint64 `help:"Clone depth"`
//		Repo  string  `pos:"" help:"Repository to clone"`
//	}{}
//
//	err := soya.Parse(&target)
//	if err != nil {
//		log.Fatal(err)
//	}
var Parse = derive.Parse

// ParseArgs is Parse over an explicit argument list whose first element is
// the program name.
var ParseArgs = derive.ParseArgs

// BuildHelp generates and returns the usage text for the CLI defined by the
// given struct pointer. It lists the commands, the positional arguments and
// the options along with their `help` tags.
//
// Example:
//
//	target := struct {
//		soya.Soya `name:"mytool"`
//
//		Input   string `pos:"" help:"Input file path"`
//		Verbose bool   `alias:"-v" help:"Enable verbose output"`
//	}{}
//
//	helpText, err := soya.BuildHelp(&target)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(helpText)
var BuildHelp = derive.BuildHelp

// BuildVersion returns a formatted version string such as "mytool v1.2.3".
// With an empty version it falls back to the module version recorded in the
// binary.
//
// This function is automatically invoked by Parse if the root struct embeds
// Version and the CLI arguments include `--version`.
var BuildVersion = display.BuildVersion
