package main

import (
	"fmt"
	"io"
	"os"

	cerrors "github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/chriso345/soya"
	"github.com/chriso345/soya/core"
)

type CLIArgs struct {
	soya.Soya    `name:"git" help:"An example application demonstrating soya features"`
	soya.Help
	soya.Version `version:"0.1.0"`

	Debug []bool  `alias:"-d" force:"false" help:"Enable debug output, repeat for more"`
	Dir   *string `name:"-C" help:"Run as if started in this directory"`

	Clone *struct {
		soya.Help

		Depth  *uint64 `help:"Create a shallow clone with that many commits"`
		Branch *string `alias:"-b" help:"Check out this branch"`
		URL    string  `pos:"" help:"Repository to clone"`
		Into   *string `pos:"" help:"Target directory"`
	} `cmd:"clone" help:"Clone a repository into a new directory"`

	Apply *struct {
		soya.Help

		Patch *soya.Stdin `help:"Read the patch from stdin"`
		Files *[]string   `main:"" help:"Patch files"`
	} `cmd:"apply" help:"Apply a patch"`
}

func main() {
	if err := run(os.Args, os.Getenv("SOYA_TRACE") != "", zap.NewDevelopment); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// run parses args and reports what was asked for. With trace set, parser
// decisions are logged through a logger from newLogger.
func run(args []string, trace bool, newLogger func(...zap.Option) (*zap.Logger, error)) error {
	cli := &CLIArgs{}

	var opts []core.Option
	if trace {
		logger, err := newLogger()
		if err != nil {
			return cerrors.Wrap(err, "creating logger")
		}
		defer logger.Sync()
		opts = append(opts, core.WithLogger(logger))
	}

	if err := soya.ParseArgs(cli, args, opts...); err != nil {
		return cerrors.Wrap(err, "parsing arguments")
	}

	switch {
	case cli.Clone != nil:
		fmt.Printf("clone %s (debug level %d)\n", cli.Clone.URL, len(cli.Debug))
	case cli.Apply != nil && cli.Apply.Patch != nil:
		patch, err := io.ReadAll(cli.Apply.Patch)
		if err != nil {
			return cerrors.Wrap(err, "reading patch")
		}
		fmt.Printf("apply %d bytes from stdin\n", len(patch))
	case cli.Apply != nil && cli.Apply.Files != nil:
		fmt.Printf("apply %v\n", *cli.Apply.Files)
	default:
		fmt.Printf("Parsed Arguments: %+v\n", cli)
	}
	return nil
}
