package display

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/samber/lo"

	"github.com/chriso345/soya/core"
)

var (
	heading = color.New(color.Bold, color.Underline).SprintFunc()
	bold    = color.New(color.Bold).SprintFunc()
)

// Usage renders the help text of a program from its option records: a usage
// line, the optional about text, then the commands, arguments and options
// sections. Empty sections are left out.
func Usage(name, about string, opts []*core.Opt) string {
	cmds := lo.Filter(opts, func(opt *core.Opt, _ int) bool { return opt.MatStyle(core.StyleCmd) })
	args := lo.Filter(opts, func(opt *core.Opt, _ int) bool {
		return opt.MatStyle(core.StylePos) || opt.MatStyle(core.StyleMain)
	})
	flags := lo.Filter(opts, func(opt *core.Opt, _ int) bool { return isFlag(opt) })

	var builder strings.Builder
	builder.WriteString(heading("Usage:") + " ")
	builder.WriteString(bold(name))
	if len(flags) > 0 {
		builder.WriteString(" [OPTIONS]")
	}
	for _, opt := range args {
		builder.WriteString(" " + placeholder(opt))
	}
	if len(cmds) > 0 {
		builder.WriteString(" <COMMAND>")
	}
	builder.WriteString("\n")

	if about != "" {
		builder.WriteString("\n" + about + "\n")
	}

	if len(cmds) > 0 {
		builder.WriteString("\n" + heading("Commands:") + "\n")
		builder.WriteString(rows(lo.Map(cmds, func(opt *core.Opt, _ int) [2]string {
			return [2]string{opt.Name(), opt.Help()}
		})))
	}

	if len(args) > 0 {
		builder.WriteString("\n" + heading("Arguments:") + "\n")
		builder.WriteString(rows(lo.Map(args, func(opt *core.Opt, _ int) [2]string {
			return [2]string{placeholder(opt), opt.Help()}
		})))
	}

	if len(flags) > 0 {
		builder.WriteString("\n" + heading("Options:") + "\n")
		builder.WriteString(rows(lo.Map(flags, func(opt *core.Opt, _ int) [2]string {
			return [2]string{flagHint(opt), opt.Help()}
		})))
	}

	return builder.String()
}

// === HELPERS ===

func isFlag(opt *core.Opt) bool {
	return opt.MatStyle(core.StyleArgument) || opt.MatStyle(core.StyleBoolean) || opt.MatStyle(core.StyleCombined)
}

// placeholder renders a positional as <NAME> when required and [NAME] when
// not, with a trailing ... when it takes more than one slot.
func placeholder(opt *core.Opt) string {
	label := strings.ToUpper(opt.Name())
	if idx, ok := opt.Index(); ok && multiSlot(idx) {
		label += "..."
	}
	if opt.Force() {
		return "<" + label + ">"
	}
	return "[" + label + "]"
}

func multiSlot(idx core.Index) bool {
	form := idx.String()
	return strings.Contains(form, "..") || strings.HasPrefix(form, "[") ||
		strings.HasPrefix(form, "-[") || form == "*"
}

// flagHint is the record's hint, followed by the value type for options
// that take a value.
func flagHint(opt *core.Opt) string {
	if opt.MatStyle(core.StyleArgument) {
		return fmt.Sprintf("%s <%s>", opt.Hint(), opt.Type())
	}
	return opt.Hint()
}

// rows aligns the help column of each row.
func rows(lines [][2]string) string {
	width := lo.Max(lo.Map(lines, func(line [2]string, _ int) int { return len(line[0]) }))

	var builder strings.Builder
	for _, line := range lines {
		padding := strings.Repeat(" ", width-len(line[0]))
		builder.WriteString(strings.TrimRight(fmt.Sprintf("  %s%s  %s", line[0], padding, line[1]), " "))
		builder.WriteString("\n")
	}
	return builder.String()
}
