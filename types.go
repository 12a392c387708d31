package soya

import "github.com/chriso345/soya/core"

// Soya is the primary metadata marker for CLI definitions.
//
// It is embedded in the root struct to name the tool and describe it:
//
//	cli := struct {
//	    soya.Soya `name:"mytool" help:"Does one thing well"`
//	    ...
//	}{}
type Soya = core.Soya

// Version is a marker type that indicates the CLI tool supports a `--version` flag.
//
// If the `version` struct tag is set, it is used directly. If left empty,
// the version is read from the build info of the binary.
//
//	cli := struct {
//	    soya.Soya    `name:"mytool"`
//	    soya.Version `version:"1.0.0"`
//	}{}
type Version = core.Version

// Help is a marker type that enables the automatic `--help` and `-h` flag handling.
//
// A command struct may embed its own Help to get `tool cmd --help`.
//
//	cli := struct {
//	    soya.Soya `name:"mytool"`
//	    soya.Help
//	    ...
//	}{}
type Help = core.Help

// Stdin is the value of a field bound to the `-` token. Its reader is
// os.Stdin unless the parser was given another one.
//
//	cli := struct {
//	    Input *soya.Stdin `help:"Read the input from stdin"`
//	}{}
type Stdin = core.Stdin

// Stop is the value of a field bound to the `--` token. Every token after
// it is positional.
type Stop = core.Stop
