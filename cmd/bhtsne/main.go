// Package main provides the bhtsne command, which runs the Barnes-Hut t-SNE
// graph and gradient kernels on JSON or YAML documents.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
)

const version = "v0.1.0-dev"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "bhtsne: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		usage(stdout)
		return nil
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "bhtsne %s\n", version)
		return nil
	case "symmetrize":
		return runSymmetrize(args[1:], stdout, stderr)
	case "forces":
		return runForces(args[1:], stderr)
	case "gains":
		return runGains(args[1:], stderr)
	case "help", "-h", "--help":
		usage(stdout)
		return nil
	default:
		usage(stderr)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "bhtsne - Barnes-Hut t-SNE kernels")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version      Show version")
	fmt.Fprintln(w, "  symmetrize   Symmetrize a k-NN graph (-in, -out)")
	fmt.Fprintln(w, "  forces       Attractive edge forces (-graph, -embedding, -out)")
	fmt.Fprintln(w, "  gains        Adaptive gain update (-gains, -grads, -steps, -out)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Files ending in .json, .yaml or .yml are accepted.")
}

// commonFlags registers the flags shared by every kernel command.
type commonFlags struct {
	config  string
	verbose bool
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.config, "config", "", "TOML settings file")
	fs.BoolVar(&c.verbose, "v", false, "debug logging")
}

var errMissingFlag = errors.New("missing required flag")

func requireFlags(fs *flag.FlagSet, names ...string) error {
	for _, name := range names {
		if fs.Lookup(name).Value.String() == "" {
			return fmt.Errorf("%s: -%s: %w", fs.Name(), name, errMissingFlag)
		}
	}
	return nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
