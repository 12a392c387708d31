package derive

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"

	"github.com/samber/lo"

	"github.com/chriso345/soya/core"
	"github.com/chriso345/soya/display"
	"github.com/chriso345/soya/errors"
	"github.com/chriso345/soya/infer"
	"github.com/chriso345/soya/internal/common"
)

var osExit = os.Exit // Mockable for testing

// command is a struct field reached through a command keyword.
type command struct {
	name string
	dst  reflect.Value
}

// target returns a pointer to the command's struct, allocating it when the
// field is a nil pointer.
func (c command) target() any {
	if c.dst.Kind() == reflect.Pointer {
		if c.dst.IsNil() {
			c.dst.Set(reflect.New(c.dst.Type().Elem()))
		}
		return c.dst.Interface()
	}
	return c.dst.Addr().Interface()
}

// tree is a struct bound to a fresh parser.
type tree struct {
	p       *core.Parser
	meta    common.Meta
	setters []setter
	cmds    []command
	help    *infer.Field[bool]
	version *infer.Field[bool]
	// next free positional slot for fields without an explicit index
	next int
	// field whose automatic slot range is still open, if any
	open string
}

// scope names the program a struct is parsed for; cmd is empty at the root.
type scope struct {
	parent string
	cmd    string
}

// Parse parses os.Args into target, which must be a pointer to a struct.
func Parse(target any, opts ...core.Option) error {
	return ParseArgs(target, os.Args, opts...)
}

// ParseArgs parses args into target. args[0] is the program name.
//
// When the scan ends on a command keyword bound to a struct field, the
// remaining tokens are parsed into that struct in turn.
func ParseArgs(target any, args []string, opts ...core.Option) error {
	return parse(target, args, scope{}, opts)
}

// BuildHelp renders the usage text of target without parsing anything.
func BuildHelp(target any) (string, error) {
	tr, err := build(target, nil)
	if err != nil {
		return "", err
	}
	return tr.usage(os.Args, scope{}), nil
}

func parse(target any, args []string, sc scope, opts []core.Option) error {
	tr, err := build(target, opts)
	if err != nil {
		return err
	}

	res, err := tr.p.Parse(args)
	if err != nil {
		return err
	}

	if asked(tr.help) {
		fmt.Print(tr.usage(args, sc))
		osExit(0)
		return nil
	}
	if asked(tr.version) {
		fmt.Println(display.BuildVersion(tr.name(args, sc), tr.meta.Version))
		osExit(0)
		return nil
	}

	if err := tr.p.Finalize(); err != nil {
		return err
	}
	for _, set := range tr.setters {
		if err := set(); err != nil {
			return err
		}
	}

	if res.Cmd == "" {
		return nil
	}
	cmd, ok := lo.Find(tr.cmds, func(c command) bool { return c.name == res.Cmd })
	if !ok {
		// a bool command field, already set
		return nil
	}
	return parse(cmd.target(), res.Rest, scope{parent: tr.name(args, sc), cmd: cmd.name}, opts)
}

func asked(f *infer.Field[bool]) bool {
	if f == nil {
		return false
	}
	v, err := f.Value()
	return err == nil && v
}

func build(target any, opts []core.Option) (*tree, error) {
	if !common.IsStructPtr(target) {
		return nil, errors.NewParseError("invalid type: must pass pointer to struct")
	}
	v := reflect.ValueOf(target).Elem()
	tr := &tree{
		p:    core.NewParser(opts...),
		meta: common.GetMeta(common.GetStructType(target)),
		next: 1,
	}

	var err error
	if tr.meta.HasHelp {
		cfg := core.NewConfig().SetName("--help").AddAlias("-h").SetHelp("Show this help message")
		if tr.help, err = infer.Bind(tr.p, cfg, infer.Bool()); err != nil {
			return nil, err
		}
	}
	if tr.meta.HasVersion {
		cfg := core.NewConfig().SetName("--version").SetHelp("Show version information")
		if tr.version, err = infer.Bind(tr.p, cfg, infer.Bool()); err != nil {
			return nil, err
		}
	}

	if err := tr.collect(v); err != nil {
		return nil, err
	}
	return tr, nil
}

// collect binds every exported field of v. Struct fields that are neither a
// supported value type nor a command are inline groups: their fields are
// bound as if declared on v.
func (tr *tree) collect(v reflect.Value) error {
	t := v.Type()
	for i := range t.NumField() {
		field := t.Field(i)
		if common.IsMeta(field) || !field.IsExported() || field.Tag.Get("name") == "-" {
			continue
		}
		if err := tr.field(field, v.Field(i)); err != nil {
			return err
		}
	}
	return nil
}

func (tr *tree) field(field reflect.StructField, dst reflect.Value) error {
	if keyword, ok := field.Tag.Lookup("cmd"); ok {
		return tr.command(field, dst, keyword)
	}

	bind, ok := shapes[field.Type]
	if !ok {
		if field.Type.Kind() == reflect.Struct {
			return tr.collect(dst)
		}
		return errors.NewUnsupportedField(field.Name, field.Type.String())
	}

	cfg, r, err := tr.config(field)
	if err != nil {
		return err
	}
	set, err := bind(&binding{p: tr.p, cfg: cfg, role: r, dst: dst})
	if err != nil {
		return err
	}
	tr.setters = append(tr.setters, set)
	return nil
}

// command binds a command keyword. A bool field records whether the keyword
// appeared; a struct field receives the tokens that follow it.
func (tr *tree) command(field reflect.StructField, dst reflect.Value, keyword string) error {
	if keyword == "" {
		keyword = common.KebabCase(field.Name)
	}
	cfg, _, err := tr.config(field)
	if err != nil {
		return err
	}
	cfg.SetName(keyword)
	if !cfg.HasForce() {
		cfg.SetForce(false)
	}

	b := &binding{p: tr.p, cfg: cfg, dst: dst}
	elem := field.Type
	if elem.Kind() == reflect.Pointer {
		elem = elem.Elem()
	}

	switch {
	case field.Type == reflect.TypeFor[bool]():
		set, err := bindField(b, infer.Cmd())
		if err != nil {
			return err
		}
		tr.setters = append(tr.setters, set)
	case field.Type == reflect.TypeFor[*bool]():
		set, err := bindField(b, infer.Optional(infer.Cmd()))
		if err != nil {
			return err
		}
		tr.setters = append(tr.setters, set)
	case elem.Kind() == reflect.Struct:
		if _, err := infer.Bind(tr.p, cfg, infer.Cmd()); err != nil {
			return err
		}
		tr.cmds = append(tr.cmds, command{name: keyword, dst: dst})
	default:
		return errors.NewUnsupportedField(field.Name, field.Type.String())
	}
	return nil
}

// config builds the configuration a field's tags describe. Attributes the
// tags leave out are inferred from the field type later.
func (tr *tree) config(field reflect.StructField) (*core.Config, role, error) {
	tag := field.Tag
	cfg := core.NewConfig()
	r := roleOption

	if _, ok := tag.Lookup("main"); ok {
		r = roleMain
	}
	if form, ok := tag.Lookup("pos"); ok {
		r = rolePos
		idx, err := tr.slot(form, field)
		if err != nil {
			return nil, r, errors.Wrap(err, "field %s", field.Name)
		}
		cfg.SetIndex(idx)
	}

	name := tag.Get("name")
	if name == "" {
		name = defaultName(field.Name, r)
	}
	cfg.SetName(name)

	for _, alias := range common.SplitList(tag.Get("alias")) {
		cfg.AddAlias(alias)
	}
	if help, ok := tag.Lookup("help"); ok {
		cfg.SetHelp(help)
	}
	if hint, ok := tag.Lookup("hint"); ok {
		cfg.SetHint(hint)
	}
	if force, ok := tag.Lookup("force"); ok {
		b, err := strconv.ParseBool(force)
		if err != nil {
			return nil, r, errors.NewParseError(fmt.Sprintf("field %s: invalid force tag %q", field.Name, force))
		}
		cfg.SetForce(b)
	}
	return cfg, r, nil
}

// slot resolves a pos tag. An empty tag takes the next free slot, or every
// slot from there on for fields collecting several values. Nothing can take
// an automatic slot after such a field.
func (tr *tree) slot(form string, field reflect.StructField) (core.Index, error) {
	if form != "" {
		return core.ParseIndex(form)
	}
	if tr.open != "" {
		return core.Index{}, errors.NewParseError(fmt.Sprintf(
			"no free positional slot after %s, give an explicit pos index", tr.open))
	}
	at := tr.next
	tr.next++
	if isMulti(field.Type) {
		tr.open = field.Name
		return core.RangeFrom(at), nil
	}
	return core.Forward(at), nil
}

func defaultName(field string, r role) string {
	name := common.KebabCase(field)
	if r != roleOption {
		return name
	}
	if len(name) == 1 {
		return "-" + name
	}
	return "--" + name
}

// name is the program name shown in help and version output.
func (tr *tree) name(args []string, sc scope) string {
	if tr.meta.Name != "" {
		return tr.meta.Name
	}
	if sc.cmd != "" {
		return sc.parent + " " + sc.cmd
	}
	if len(args) > 0 && args[0] != "" {
		return filepath.Base(args[0])
	}
	return ""
}

func (tr *tree) usage(args []string, sc scope) string {
	if sc.cmd != "" && tr.meta.Name == "" {
		return display.SubUsage(sc.parent, sc.cmd, tr.meta.About, tr.p.Opts())
	}
	return display.Usage(tr.name(args, sc), tr.meta.About, tr.p.Opts())
}
