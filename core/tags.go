package core

import "io"

// Stdin is the value of an option bound to the `-` token. It carries the
// reader the parser was configured with, os.Stdin unless overridden.
type Stdin struct {
	io.Reader
}

// Stop is the value of an option bound to the `--` token, after which every
// token is positional.
type Stop struct{}

// These empty structs serve as declarative annotations embedded within the
// root struct handed to the struct binder.
//
// === META TAGS ===

// Soya names the program through its `name` tag and may describe it with `help`.
type Soya struct{}

// Help enables `-h` and `--help`.
type Help struct{}

// Version enables `--version`; the version comes from its `version` tag.
type Version struct{}
