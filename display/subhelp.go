package display

import "github.com/chriso345/soya/core"

// SubUsage renders the help of a command reached from a parent program,
// showing both names together (e.g. "git clone [OPTIONS] <URL>").
func SubUsage(parent, cmd, about string, opts []*core.Opt) string {
	name := cmd
	if parent != "" {
		name = parent + " " + cmd
	}
	return Usage(name, about, opts)
}
