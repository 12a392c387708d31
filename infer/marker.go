package infer

import "github.com/chriso345/soya/core"

type command struct {
	scalar[bool]
}

// Cmd declares a command keyword. The field becomes true when the keyword
// appears at its index, forward(1) unless configured otherwise.
func Cmd() Infer[bool, bool] { return command{scalar[bool]{tag: core.TypeCmd}} }

func (command) Index() (core.Index, bool) { return core.Forward(1), true }
func (command) Style() []core.Style       { return []core.Style{core.StyleCmd} }
func (command) IgnoreIndex() bool         { return false }

type stdin struct {
	scalar[core.Stdin]
}

// Stdin binds the `-` token. A name given in the configuration is kept as
// an alias for help output and the option itself is renamed to `-`.
func Stdin() Infer[core.Stdin, core.Stdin] { return stdin{scalar[core.Stdin]{tag: core.TypeStdin}} }

func (stdin) Style() []core.Style { return []core.Style{core.StyleBoolean} }
func (stdin) IgnoreAlias() bool   { return true }

func (stdin) Tweak(cfg *core.Config) error {
	cfg.DemoteName()
	cfg.SetName("-")
	return nil
}

type stop struct {
	scalar[core.Stop]
}

// Stop binds the `--` token that ends option processing.
func Stop() Infer[core.Stop, core.Stop] { return stop{scalar[core.Stop]{tag: core.TypeStop}} }

func (stop) Style() []core.Style { return []core.Style{core.StyleBoolean} }
func (stop) IgnoreAlias() bool   { return true }

func (stop) Tweak(cfg *core.Config) error {
	cfg.SetName("--")
	return nil
}
