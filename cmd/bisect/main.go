package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/SteadBytes/bisection"
	log "github.com/sirupsen/logrus"
)

const usage = `usage: bisect [flags] <command> [flags] args...

commands:
  grade VALUE...            map values onto the configured breakpoint table
  ring KEY... [-n N]        resolve keys to nodes on the configured hash ring
  search VALUE... -in LIST  print left and right insertion points in LIST

flags may appear before or after the command and its arguments; use -- to
pass arguments that start with a dash.

flags:
`

var errUsage = errors.New("missing command")

func globalFlags(fs *flag.FlagSet, opts *bisection.Options) {
	fs.StringVar(&opts.ConfigPath, "config", opts.ConfigPath, "path to a toml config file")
	fs.BoolVar(&opts.JSON, "json", opts.JSON, "print results as json")
	fs.BoolVar(&opts.Debug, "debug", opts.Debug, "enable debug output")
}

func commandFlags(fs *flag.FlagSet, command string, opts *bisection.Options) {
	switch command {
	case "search":
		fs.StringVar(&opts.In, "in", opts.In, "comma separated sorted list to search")
	case "ring":
		fs.IntVar(&opts.Count, "n", opts.Count, "distinct nodes to report per key")
	}
}

// parseInterspersed parses flags anywhere in args and returns the
// positional arguments in order. Everything after "--" is positional.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional, tail []string
	for i, a := range args {
		if a == "--" {
			args, tail = args[:i], args[i+1:]
			break
		}
	}

	for len(args) > 0 {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		args = fs.Args()
		if len(args) == 0 {
			break
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
	return append(positional, tail...), nil
}

func parseArgs(argv []string, stderr io.Writer) (bisection.Options, error) {
	opts := bisection.Options{Count: 1}

	fs := flag.NewFlagSet("bisect", flag.ContinueOnError)
	fs.SetOutput(stderr)
	globalFlags(fs, &opts)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(argv); err != nil {
		return opts, err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return opts, errUsage
	}
	opts.Command = fs.Arg(0)

	cfs := flag.NewFlagSet("bisect "+opts.Command, flag.ContinueOnError)
	cfs.SetOutput(stderr)
	globalFlags(cfs, &opts)
	commandFlags(cfs, opts.Command, &opts)

	args, err := parseInterspersed(cfs, fs.Args()[1:])
	if err != nil {
		return opts, err
	}
	opts.Args = args
	return opts, nil
}

func run(argv []string, stdout, stderr io.Writer) error {
	opts, err := parseArgs(argv, stderr)
	if err != nil {
		return err
	}
	opts.Out = stdout
	return bisection.Run(opts)
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Error(err)
		os.Exit(1)
	}
}
