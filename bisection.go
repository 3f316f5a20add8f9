// Package bisection wires the bisect, lookup and hash libraries into the
// bisect command line tool.
package bisection

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/SteadBytes/bisection/config"
	"github.com/SteadBytes/bisection/libs/bisect"
	"github.com/SteadBytes/bisection/libs/hash"
	"github.com/SteadBytes/bisection/libs/lookup"
	log "github.com/sirupsen/logrus"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrNoArgs         = errors.New("no arguments given")
	ErrUnsorted       = errors.New("search list is not sorted")
)

type Options struct {
	Command    string
	ConfigPath string
	Args       []string

	// In is the comma separated sorted list used by search.
	In string
	// Count is how many distinct nodes ring reports per key.
	Count int

	JSON  bool
	Debug bool
	Out   io.Writer
}

func Run(opts Options) error {
	if opts.Debug {
		log.SetLevel(log.DebugLevel)
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	conf := config.Default()
	if opts.ConfigPath != "" {
		c, err := config.NewConfig(opts.ConfigPath)
		if err != nil {
			return fmt.Errorf("config init error: %w", err)
		}
		conf = c
	}
	log.WithField("command", opts.Command).Debugf("run with %d args", len(opts.Args))

	if len(opts.Args) == 0 {
		return fmt.Errorf("%s: %w", opts.Command, ErrNoArgs)
	}

	var (
		rep *report
		err error
	)
	switch opts.Command {
	case "grade":
		rep, err = grade(conf, opts.Args)
	case "ring":
		rep, err = locate(conf, opts.Args, opts.Count)
	case "search":
		rep, err = search(opts.In, opts.Args)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, opts.Command)
	}
	if err != nil {
		return err
	}

	if opts.JSON {
		return rep.writeJSON(opts.Out)
	}
	return rep.writeTable(opts.Out)
}

func parseFloats(args []string) ([]float64, error) {
	values := make([]float64, 0, len(args))
	for _, a := range args {
		v, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q: %w", a, err)
		}
		values = append(values, v)
	}
	return values, nil
}

func grade(conf *config.BisectConfig, args []string) (*report, error) {
	table, err := lookup.NewTable(conf.Table.Breakpoints, conf.Table.Labels)
	if err != nil {
		return nil, err
	}
	scores, err := parseFloats(args)
	if err != nil {
		return nil, err
	}

	rep := newReport("grade", "value", "label")
	for i, s := range scores {
		label := table.Lookup(s)
		log.Debugf("grade %v -> %s", s, label)
		rep.add(args[i], label)
	}
	return rep, nil
}

func locate(conf *config.BisectConfig, keys []string, n int) (*report, error) {
	if n < 1 {
		n = 1
	}
	ch := hash.NewConsistentHash(conf.Ring.Nodes, conf.Ring.Replicas)
	log.Debugf("ring has %d virtual nodes", ch.Len())

	rep := newReport("ring", "key", "nodes")
	for _, key := range keys {
		nodes, err := ch.GetNodes(key, n)
		if err != nil {
			return nil, fmt.Errorf("locate %q: %w", key, err)
		}
		rep.add(key, strings.Join(nodes, ","))
	}
	return rep, nil
}

func search(in string, args []string) (*report, error) {
	var list []float64
	if strings.TrimSpace(in) != "" {
		l, err := parseFloats(strings.Split(in, ","))
		if err != nil {
			return nil, err
		}
		list = l
	}
	if !slices.IsSorted(list) {
		return nil, fmt.Errorf("%w: %v", ErrUnsorted, list)
	}

	values, err := parseFloats(args)
	if err != nil {
		return nil, err
	}

	rep := newReport("search", "value", "left", "right")
	for i, v := range values {
		rep.add(args[i],
			strconv.Itoa(bisect.BisectLeft(list, v)),
			strconv.Itoa(bisect.BisectRight(list, v)))
	}
	return rep, nil
}
