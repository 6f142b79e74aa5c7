// SPDX-License-Identifier: MIT

// Command pathstep steps through a shortest-path search one micro-step at a
// time, either in the terminal (play) or behind an HTTP/JSON API (serve).
//
// Usage:
//
//	pathstep [-config pathstep.toml] play  [-graph g.json] [-start A] [-end D] [-delay 200ms]
//	pathstep [-config pathstep.toml] serve [-addr :8080] [-graph g.toml] [-start A] [-end D]
//
// Without -graph the built-in five-vertex sample scenario is used.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/pathstep/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses global flags, loads configuration and dispatches to a subcommand.
// It returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("pathstep", flag.ContinueOnError)
	fs.SetOutput(stderr)
	confPath := fs.String("config", "", "TOML config file path")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: pathstep [-config file] <play|serve> [flags]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	cfg, err := config.Load(*confPath)
	if err != nil {
		fmt.Fprintf(stderr, "failed to load config: %v\n", err)
		return 1
	}

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "play":
		err = play(cfg, rest, stdout, stderr)
	case "serve":
		err = serve(cfg, rest, stderr)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", cmd)
		fs.Usage()
		return 2
	}

	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "pathstep %s: %v\n", cmd, err)
		return 1
	}

	return 0
}
