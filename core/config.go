package core

import "github.com/samber/lo"

// Config is the staging record an option is built from. Every attribute
// carries its own presence bit so that inference can fill only what the
// caller left out. The three ignore flags have no presence bit: inference
// always overwrites them.
type Config struct {
	typ     TypeTag
	hasType bool

	name    string
	hasName bool

	force    bool
	hasForce bool

	index    Index
	hasIndex bool

	alias    []string
	hasAlias bool

	// positions in alias filled by DemoteName rather than the caller
	demoted []int

	hint    string
	hasHint bool

	help    string
	hasHelp bool

	action    Action
	hasAction bool

	style    []Style
	hasStyle bool

	ctor    string
	hasCtor bool

	storer      Storer
	initializer Initializer

	ignoreName  bool
	ignoreAlias bool
	ignoreIndex bool
}

func NewConfig() *Config { return &Config{} }

func (c *Config) SetType(t TypeTag) *Config {
	c.typ, c.hasType = t, true
	return c
}

func (c *Config) Type() (TypeTag, bool) { return c.typ, c.hasType }
func (c *Config) HasType() bool         { return c.hasType }

func (c *Config) SetName(name string) *Config {
	c.name, c.hasName = name, true
	return c
}

func (c *Config) Name() (string, bool) { return c.name, c.hasName }
func (c *Config) HasName() bool        { return c.hasName }

func (c *Config) SetForce(force bool) *Config {
	c.force, c.hasForce = force, true
	return c
}

func (c *Config) Force() (bool, bool) { return c.force, c.hasForce }
func (c *Config) HasForce() bool      { return c.hasForce }

func (c *Config) SetIndex(idx Index) *Config {
	c.index, c.hasIndex = idx, true
	return c
}

func (c *Config) Index() (Index, bool) { return c.index, c.hasIndex }
func (c *Config) HasIndex() bool       { return c.hasIndex }

func (c *Config) AddAlias(alias string) *Config {
	c.alias, c.hasAlias = append(c.alias, alias), true
	return c
}

func (c *Config) SetAlias(alias []string) *Config {
	c.alias, c.hasAlias = alias, true
	c.demoted = nil
	return c
}

func (c *Config) Alias() ([]string, bool) { return c.alias, c.hasAlias }
func (c *Config) HasAlias() bool          { return c.hasAlias }

// DemoteName moves the current name, if any, to the end of the alias list.
// The moved alias is not counted as caller-supplied by the strict checks.
func (c *Config) DemoteName() *Config {
	if c.hasName {
		c.demoted = append(c.demoted, len(c.alias))
		c.AddAlias(c.name)
		c.name, c.hasName = "", false
	}
	return c
}

func (c *Config) callerAlias() []string {
	return lo.Filter(c.alias, func(_ string, i int) bool {
		return !lo.Contains(c.demoted, i)
	})
}

func (c *Config) SetHint(hint string) *Config {
	c.hint, c.hasHint = hint, true
	return c
}

func (c *Config) Hint() (string, bool) { return c.hint, c.hasHint }
func (c *Config) HasHint() bool        { return c.hasHint }

func (c *Config) SetHelp(help string) *Config {
	c.help, c.hasHelp = help, true
	return c
}

func (c *Config) Help() (string, bool) { return c.help, c.hasHelp }
func (c *Config) HasHelp() bool        { return c.hasHelp }

func (c *Config) SetAction(act Action) *Config {
	c.action, c.hasAction = act, true
	return c
}

func (c *Config) Action() (Action, bool) { return c.action, c.hasAction }
func (c *Config) HasAction() bool        { return c.hasAction }

func (c *Config) SetStyle(styles ...Style) *Config {
	c.style, c.hasStyle = styles, true
	return c
}

func (c *Config) Style() ([]Style, bool) { return c.style, c.hasStyle }
func (c *Config) HasStyle() bool         { return c.hasStyle }

func (c *Config) SetCtor(name string) *Config {
	c.ctor, c.hasCtor = name, true
	return c
}

func (c *Config) Ctor() (string, bool) { return c.ctor, c.hasCtor }
func (c *Config) HasCtor() bool        { return c.hasCtor }

// SetStorer installs a custom storer. Option construction rejects it.
func (c *Config) SetStorer(s Storer) *Config {
	c.storer = s
	return c
}

// SetInitializer installs a custom initializer. Option construction rejects it.
func (c *Config) SetInitializer(i Initializer) *Config {
	c.initializer = i
	return c
}

func (c *Config) HasStorer() bool      { return c.storer != nil }
func (c *Config) HasInitializer() bool { return c.initializer != nil }

func (c *Config) SetIgnoreName(v bool) *Config {
	c.ignoreName = v
	return c
}

func (c *Config) SetIgnoreAlias(v bool) *Config {
	c.ignoreAlias = v
	return c
}

func (c *Config) SetIgnoreIndex(v bool) *Config {
	c.ignoreIndex = v
	return c
}

func (c *Config) IgnoreName() bool  { return c.ignoreName }
func (c *Config) IgnoreAlias() bool { return c.ignoreAlias }
func (c *Config) IgnoreIndex() bool { return c.ignoreIndex }
