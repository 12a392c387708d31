package core

import (
	"sort"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/chriso345/soya/errors"
)

type Uid = uint64

// Opt is a finalized option declaration. Apart from its uid and matched bit
// it does not change once built.
type Opt struct {
	uid         Uid
	name        string
	typ         TypeTag
	hint        string
	help        string
	styles      []Style
	index       Index
	hasIndex    bool
	alias       []string
	accessor    Accessor
	action      Action
	force       bool
	matched     bool
	ignoreName  bool
	ignoreAlias bool
	ignoreIndex bool
}

// NewOpt converts cfg into an option. Strict checks run only in builds with
// the soyadebug tag; parsers decide for themselves through WithStrict.
func NewOpt(cfg *Config) (*Opt, error) {
	return newOpt(cfg, debugBuild, logger)
}

func newOpt(cfg *Config, strict bool, log *zap.Logger) (*Opt, error) {
	styles, ok := cfg.Style()
	if !ok {
		return nil, errors.NewIncompleteConfig("Style")
	}
	name, ok := cfg.Name()
	if !ok {
		return nil, errors.NewIncompleteConfig("option name")
	}
	typ, ok := cfg.Type()
	if !ok {
		return nil, errors.NewIncompleteConfig("option value type")
	}

	action, ok := cfg.Action()
	if !ok {
		action = ActionApp
	}
	force, _ := cfg.Force()
	help, _ := cfg.Help()
	index, hasIndex := cfg.Index()
	alias, _ := cfg.Alias()

	hint, ok := cfg.Hint()
	if !ok {
		hint = genHint(name, index, hasIndex, alias)
	}

	if cfg.HasStorer() {
		log.Warn("custom storer ignored, soya options manage their own values", zap.String("option", name))
	}
	if cfg.HasInitializer() {
		log.Warn("custom initializer ignored, soya options manage their own values", zap.String("option", name))
	}

	if strict {
		if err := checkConfig(cfg, name, hasIndex); err != nil {
			return nil, err
		}
	}

	return &Opt{
		name:        name,
		typ:         typ,
		hint:        hint,
		help:        help,
		styles:      styles,
		index:       index,
		hasIndex:    hasIndex,
		alias:       alias,
		accessor:    NullAccessor(),
		action:      action,
		force:       force,
		ignoreName:  cfg.IgnoreName(),
		ignoreAlias: cfg.IgnoreAlias(),
		ignoreIndex: cfg.IgnoreIndex(),
	}, nil
}

// checkConfig reports configurations that cannot be what the caller meant.
// It is not load-bearing: parsing behaves the same with or without it.
func checkConfig(cfg *Config, name string, hasIndex bool) error {
	if cfg.IgnoreAlias() {
		if alias := cfg.callerAlias(); len(alias) > 0 {
			return errors.NewAssertion(name, "alias not supported: "+strings.Join(alias, ", "))
		}
	}
	if !cfg.IgnoreIndex() && !hasIndex {
		return errors.NewAssertion(name, "please provide an index for the position to capture")
	}
	return nil
}

// genHint lists the name and aliases shortest first, then the index form.
func genHint(name string, index Index, hasIndex bool, alias []string) string {
	names := append([]string{name}, alias...)
	sort.SliceStable(names, func(i, j int) bool { return len(names[i]) < len(names[j]) })

	hint := strings.Join(names, ", ")
	if hasIndex {
		if form := index.String(); form != "" {
			hint += "@" + form
		}
	}
	return hint
}

func (o *Opt) Uid() Uid           { return o.uid }
func (o *Opt) Name() string       { return o.name }
func (o *Opt) Type() TypeTag      { return o.typ }
func (o *Opt) Hint() string       { return o.hint }
func (o *Opt) Help() string       { return o.help }
func (o *Opt) Styles() []Style    { return o.styles }
func (o *Opt) Alias() []string    { return o.alias }
func (o *Opt) Action() Action     { return o.action }
func (o *Opt) Force() bool        { return o.force }
func (o *Opt) Matched() bool      { return o.matched }
func (o *Opt) Accessor() Accessor { return o.accessor }
func (o *Opt) IgnoreName() bool   { return o.ignoreName }
func (o *Opt) IgnoreAlias() bool  { return o.ignoreAlias }
func (o *Opt) IgnoreIndex() bool  { return o.ignoreIndex }

func (o *Opt) Index() (Index, bool) { return o.index, o.hasIndex }

// Valid reports whether the option is satisfied: not forced, or matched.
func (o *Opt) Valid() bool { return !o.force || o.matched }

func (o *Opt) SetUid(uid Uid)          { o.uid = uid }
func (o *Opt) SetMatched(matched bool) { o.matched = matched }

// Reset clears the matched bit before a new parse.
func (o *Opt) Reset() { o.matched = false }

// Init runs the option's initializer.
func (o *Opt) Init() error { return o.accessor.Initialize() }

func (o *Opt) MatStyle(style Style) bool { return lo.Contains(o.styles, style) }

func (o *Opt) MatForce(force bool) bool { return o.force == force }

func (o *Opt) MatName(name string) bool { return o.name == name }

func (o *Opt) MatAlias(name string) bool { return lo.Contains(o.alias, name) }

// MatIndex resolves the option's index against slot pos of total and
// reports whether it designates pos.
func (o *Opt) MatIndex(pos, total int) bool {
	if !o.hasIndex {
		return false
	}
	slot, ok := o.index.Calc(pos, total)
	return ok && slot == pos
}
