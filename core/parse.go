package core

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/chriso345/soya/errors"
)

// DefaultCtor is the name of the option constructor every parser starts with.
const DefaultCtor = "default"

// Ctx describes one occurrence handed to a Handler.
type Ctx struct {
	Opt *Opt
	// Arg is the raw token value the occurrence was converted from.
	Arg string
	// Pos and Total locate positional occurrences; both are zero for options.
	Pos   int
	Total int
	// Rest is set for command occurrences: the tokens after the command
	// keyword, with the program name kept as slot 0.
	Rest []string
}

// Handler is invoked once per occurrence with the converted value, or with
// the conversion error when the token could not be converted. Returning an
// error aborts the parse.
type Handler func(ctx *Ctx, val any, err error) error

// Ctor builds an option from a configuration.
type Ctor func(cfg *Config) (*Opt, error)

// Result is what a successful parse leaves behind.
type Result struct {
	// Cmd is the name of the matched command option, empty if none matched.
	Cmd string
	// Rest holds the tokens handed to the command's own parse.
	Rest []string
	// Positionals lists every positional slot seen, slot 0 included.
	Positionals []string
}

// Parser scans a token stream against a set of options. It is not safe for
// concurrent use.
type Parser struct {
	opts     []*Opt
	handlers map[Uid]Handler
	resets   []func()
	ctors    map[string]Ctor
	strict   bool
	logger   *zap.Logger
	stdin    io.Reader
}

type Option func(*Parser)

// WithStrict turns the configuration consistency checks on or off for
// options built by the default constructor.
func WithStrict(strict bool) Option {
	return func(p *Parser) { p.strict = strict }
}

func WithLogger(l *zap.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithStdin sets the reader carried by Stdin values.
func WithStdin(r io.Reader) Option {
	return func(p *Parser) { p.stdin = r }
}

func NewParser(opts ...Option) *Parser {
	p := &Parser{
		handlers: map[Uid]Handler{},
		ctors:    map[string]Ctor{},
		strict:   debugBuild,
		logger:   logger,
		stdin:    os.Stdin,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.ctors[DefaultCtor] = func(cfg *Config) (*Opt, error) {
		return newOpt(cfg, p.strict, p.logger)
	}
	return p
}

// RegisterCtor makes a constructor available to configurations naming it.
func (p *Parser) RegisterCtor(name string, ctor Ctor) {
	p.ctors[name] = ctor
}

// Insert builds an option from cfg with the constructor cfg names and adds it.
func (p *Parser) Insert(cfg *Config) (Uid, error) {
	name, ok := cfg.Ctor()
	if !ok {
		name = DefaultCtor
	}
	ctor, ok := p.ctors[name]
	if !ok {
		return 0, errors.NewParseError(fmt.Sprintf("unknown option constructor %q", name))
	}
	opt, err := ctor(cfg)
	if err != nil {
		return 0, err
	}
	return p.Add(opt), nil
}

// Add registers an already built option and returns its uid.
func (p *Parser) Add(opt *Opt) Uid {
	uid := Uid(len(p.opts))
	opt.SetUid(uid)
	p.opts = append(p.opts, opt)
	return uid
}

// On binds the handler invoked for every occurrence of option uid.
func (p *Parser) On(uid Uid, h Handler) error {
	if _, ok := p.Get(uid); !ok {
		return errors.NewParseError(fmt.Sprintf("no option with uid %d", uid))
	}
	p.handlers[uid] = h
	return nil
}

// OnReset registers fn to run at the start of every parse.
func (p *Parser) OnReset(fn func()) {
	p.resets = append(p.resets, fn)
}

func (p *Parser) Get(uid Uid) (*Opt, bool) {
	if uid >= Uid(len(p.opts)) {
		return nil, false
	}
	return p.opts[uid], true
}

func (p *Parser) Opts() []*Opt { return p.opts }

// ParseEnv parses os.Args.
func (p *Parser) ParseEnv() (*Result, error) {
	return p.Parse(os.Args)
}

// Parse scans args, whose first element is the program name. Options are
// handled left to right as they appear, then positional options slot by
// slot, then the matched command, then catch-all options. A positional
// token matching a command option ends the scan; the tokens after it are
// returned in Result.Rest.
func (p *Parser) Parse(args []string) (*Result, error) {
	if len(args) == 0 {
		args = []string{""}
	}
	for _, opt := range p.opts {
		opt.Reset()
		if err := opt.Init(); err != nil {
			return nil, err
		}
	}
	for _, fn := range p.resets {
		fn()
	}

	res := &Result{Positionals: []string{args[0]}}
	var cmd *Opt
	cmdAt := -1
	stopped := false

scan:
	for i := 1; i < len(args); i++ {
		arg := args[i]
		switch {
		case stopped:
			res.Positionals = append(res.Positionals, arg)
		case arg == "--":
			stopped = true
			for _, opt := range p.named(arg, StyleBoolean) {
				if err := p.invoke(opt, "true", &Ctx{Arg: arg}); err != nil {
					return nil, err
				}
			}
		case arg == "-":
			opts := p.named(arg, StyleBoolean)
			if len(opts) == 0 {
				res.Positionals = append(res.Positionals, arg)
				continue
			}
			for _, opt := range opts {
				if err := p.invoke(opt, "true", &Ctx{Arg: arg}); err != nil {
					return nil, err
				}
			}
		case strings.HasPrefix(arg, "-"):
			consumed, ok, err := p.matchOption(args, i)
			if err != nil {
				return nil, err
			}
			if !ok {
				res.Positionals = append(res.Positionals, arg)
				continue
			}
			i += consumed
		default:
			if opt := p.command(arg, len(res.Positionals)); opt != nil {
				cmd, cmdAt = opt, i
				break scan
			}
			res.Positionals = append(res.Positionals, arg)
		}
	}

	total := len(res.Positionals)
	used := make([]bool, total)

	for k := 1; k < total; k++ {
		for _, opt := range p.opts {
			if !opt.MatStyle(StylePos) || !opt.MatIndex(k, total) {
				continue
			}
			used[k] = true
			if err := p.invoke(opt, res.Positionals[k], &Ctx{Pos: k, Total: total}); err != nil {
				return nil, err
			}
		}
	}

	if cmd != nil {
		res.Cmd = cmd.Name()
		res.Rest = append([]string{args[0]}, args[cmdAt+1:]...)
		p.logger.Debug("command matched, handing over remaining arguments",
			zap.String("command", cmd.Name()), zap.Strings("rest", res.Rest))
		ctx := &Ctx{Pos: total, Total: total + 1, Rest: res.Rest}
		if err := p.invoke(cmd, args[cmdAt], ctx); err != nil {
			return nil, err
		}
	}

	for _, opt := range p.opts {
		if !opt.MatStyle(StyleMain) {
			continue
		}
		for k := 1; k < total; k++ {
			if !opt.MatIndex(k, total) {
				continue
			}
			used[k] = true
			if err := p.invoke(opt, res.Positionals[k], &Ctx{Pos: k, Total: total}); err != nil {
				return nil, err
			}
		}
	}

	for k := 1; k < total; k++ {
		if !used[k] {
			return nil, p.unexpected(res.Positionals[k])
		}
	}
	return res, nil
}

// Finalize reports the first forced option that never matched.
func (p *Parser) Finalize() error {
	for _, opt := range p.opts {
		if !opt.Valid() {
			return errors.NewMissingArg(opt.Name())
		}
	}
	return nil
}

// matchOption handles the option token at args[i]. It returns the number of
// following tokens consumed as a value, and false when the token matched
// nothing but reads as a negative number.
func (p *Parser) matchOption(args []string, i int) (int, bool, error) {
	arg := args[i]
	name, value, inline := strings.Cut(arg, "=")

	if opts := p.named(name, StyleArgument); len(opts) > 0 {
		consumed := 0
		if !inline {
			if i+1 >= len(args) {
				return 0, false, errors.NewParseError(fmt.Sprintf("missing value for option %s", name))
			}
			value, consumed = args[i+1], 1
		}
		for _, opt := range opts {
			if err := p.invoke(opt, value, &Ctx{Arg: value}); err != nil {
				return 0, false, err
			}
		}
		return consumed, true, nil
	}

	if opts := p.named(name, StyleBoolean); len(opts) > 0 {
		raw := "true"
		if inline {
			raw = value
		}
		for _, opt := range opts {
			if err := p.invoke(opt, raw, &Ctx{Arg: raw}); err != nil {
				return 0, false, err
			}
		}
		return 0, true, nil
	}

	if opts, ok := p.combined(name); ok && !inline {
		for _, opt := range opts {
			if err := p.invoke(opt, "true", &Ctx{Arg: "true"}); err != nil {
				return 0, false, err
			}
		}
		return 0, true, nil
	}

	if _, err := strconv.ParseFloat(arg, 64); err == nil {
		return 0, false, nil
	}
	return 0, false, errors.NewUnknownOption(name, suggest(name, p.spellings(StyleArgument, StyleBoolean, StyleCombined)))
}

// combined splits `-abc` into `-a`, `-b`, `-c` and resolves every letter to
// a combined-style option. It fails unless every letter resolves.
func (p *Parser) combined(name string) ([]*Opt, bool) {
	if strings.HasPrefix(name, "--") || len(name) < 3 {
		return nil, false
	}
	var opts []*Opt
	for _, r := range name[1:] {
		matched := p.named("-"+string(r), StyleCombined)
		if len(matched) == 0 {
			return nil, false
		}
		opts = append(opts, matched...)
	}
	return opts, true
}

// named returns the options of the given style answering to name.
func (p *Parser) named(name string, style Style) []*Opt {
	return lo.Filter(p.opts, func(opt *Opt, _ int) bool {
		return opt.MatStyle(style) && answers(opt, name)
	})
}

func answers(opt *Opt, name string) bool {
	return (!opt.IgnoreName() && opt.MatName(name)) || (!opt.IgnoreAlias() && opt.MatAlias(name))
}

// command returns the command option named arg that accepts slot pos.
func (p *Parser) command(arg string, pos int) *Opt {
	opt, ok := lo.Find(p.opts, func(opt *Opt) bool {
		return opt.MatStyle(StyleCmd) && answers(opt, arg) && opt.MatIndex(pos, pos+1)
	})
	if !ok {
		return nil
	}
	return opt
}

func (p *Parser) invoke(opt *Opt, raw string, ctx *Ctx) error {
	ctx.Opt = opt
	if ctx.Arg == "" {
		ctx.Arg = raw
	}
	val, err := convert(opt, raw, p.stdin)

	if h, ok := p.handlers[opt.Uid()]; ok {
		if herr := h(ctx, val, err); herr != nil {
			return herr
		}
	} else if err != nil {
		return err
	}
	if err == nil {
		if serr := opt.Accessor().Store(raw, val, opt.Action()); serr != nil {
			return serr
		}
	}

	opt.SetMatched(true)
	p.logger.Debug("option matched",
		zap.String("option", opt.Name()), zap.String("arg", ctx.Arg), zap.Int("pos", ctx.Pos))
	return nil
}

func (p *Parser) unexpected(arg string) error {
	if cmds := p.spellings(StyleCmd); len(cmds) > 0 {
		return errors.NewUnknownSubcommand(arg, suggest(arg, cmds))
	}
	return errors.NewParseError(fmt.Sprintf("unexpected argument: %s", arg))
}
