package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/lvalgo/arrays"
	"github.com/katalvlaran/lvalgo/kmerge"
	"github.com/katalvlaran/lvalgo/list"
	"github.com/katalvlaran/lvalgo/phonetic"
	"github.com/katalvlaran/lvalgo/sched"
	"github.com/katalvlaran/lvalgo/sequence"
	"github.com/katalvlaran/lvalgo/tree"
)

// errUnsorted is returned when an input that must be ascending is not.
var errUnsorted = errors.New("input is not sorted ascending")

// fail logs err with the command name and returns it unchanged.
func (r *runner) fail(cmd string, err error) error {
	r.logger.WithField("command", cmd).WithError(err).Error("command failed")
	return err
}

func (r *runner) mergeCommand() *cli.Command {
	return &cli.Command{
		Name:      "merge",
		Usage:     "merge sorted lists given as comma-separated arguments or a YAML file",
		ArgsUsage: "[list ...]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "YAML file with a top-level `lists` key"},
			&cli.BoolFlag{Name: "stable", Usage: "emit equal values in input-list order"},
			&cli.BoolFlag{Name: "pairwise", Usage: "use divide-and-conquer merging instead of the heap"},
		},
		Action: func(c *cli.Context) error {
			var raw [][]int
			if path := c.String("file"); path != "" {
				var mf mergeFile
				if err := loadYAML(path, &mf); err != nil {
					return r.fail("merge", err)
				}
				raw = mf.Lists
			}
			for _, arg := range c.Args().Slice() {
				vals, err := parseInts(arg)
				if err != nil {
					return r.fail("merge", err)
				}
				raw = append(raw, vals)
			}

			heads := make([]*list.Node, len(raw))
			total := 0
			for i, vals := range raw {
				heads[i] = list.FromSlice(vals)
				if !list.IsSorted(heads[i]) {
					return r.fail("merge", fmt.Errorf("list %d: %w", i, errUnsorted))
				}
				total += len(vals)
			}

			var (
				head *list.Node
				err  error
			)
			if c.Bool("pairwise") {
				head, err = kmerge.MergePairwise(heads, len(heads))
			} else {
				var opts []kmerge.Option
				if c.Bool("stable") {
					opts = append(opts, kmerge.WithStableTies())
				}
				head, err = kmerge.Merge(heads, len(heads), opts...)
			}
			if err != nil {
				return r.fail("merge", err)
			}

			r.logger.WithFields(logrus.Fields{
				"lists":    len(heads),
				"nodes":    total,
				"pairwise": c.Bool("pairwise"),
			}).Debug("merged lists")
			_, err = fmt.Fprintln(r.out, head)
			return err
		},
	}
}

func (r *runner) rotateCommand() *cli.Command {
	return &cli.Command{
		Name:      "rotate",
		Usage:     "rotate a list left by --by positions (negative rotates right)",
		ArgsUsage: "values",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "by", Aliases: []string{"d"}, Value: 1, Usage: "positions to rotate"},
		},
		Action: func(c *cli.Context) error {
			vals, err := parseInts(c.Args().First())
			if err != nil {
				return r.fail("rotate", err)
			}
			arrays.Rotate(vals, c.Int("by"))
			_, err = fmt.Fprintln(r.out, vals)
			return err
		},
	}
}

func (r *runner) csortCommand() *cli.Command {
	return &cli.Command{
		Name:      "csort",
		Usage:     "counting-sort a list of integers",
		ArgsUsage: "values",
		Action: func(c *cli.Context) error {
			vals, err := parseInts(c.Args().First())
			if err != nil {
				return r.fail("csort", err)
			}
			sorted, err := arrays.CountingSort(vals)
			if err != nil {
				return r.fail("csort", err)
			}
			_, err = fmt.Fprintln(r.out, sorted)
			return err
		},
	}
}

func (r *runner) tsearchCommand() *cli.Command {
	return &cli.Command{
		Name:      "tsearch",
		Usage:     "ternary-search a sorted list for --target, printing its index or -1",
		ArgsUsage: "values",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "target", Aliases: []string{"t"}, Required: true},
		},
		Action: func(c *cli.Context) error {
			vals, err := parseInts(c.Args().First())
			if err != nil {
				return r.fail("tsearch", err)
			}
			if !list.IsSorted(list.FromSlice(vals)) {
				return r.fail("tsearch", errUnsorted)
			}
			_, err = fmt.Fprintln(r.out, arrays.TernarySearch(vals, c.Int("target")))
			return err
		},
	}
}

func (r *runner) jugglerCommand() *cli.Command {
	return &cli.Command{
		Name:      "juggler",
		Usage:     "print the Juggler sequence starting at n",
		ArgsUsage: "n",
		Action: func(c *cli.Context) error {
			n, err := strconv.ParseUint(c.Args().First(), 10, 64)
			if err != nil {
				return r.fail("juggler", fmt.Errorf("parse n: %w", err))
			}
			seq, err := sequence.Juggler(n)
			if err != nil {
				return r.fail("juggler", err)
			}
			r.logger.WithFields(logrus.Fields{"start": n, "steps": len(seq) - 1}).Debug("juggler sequence")
			_, err = fmt.Fprintln(r.out, seq)
			return err
		},
	}
}

func (r *runner) natoCommand() *cli.Command {
	return &cli.Command{
		Name:      "nato",
		Usage:     "spell text with the NATO alphabet, or decode code words with --decode",
		ArgsUsage: "text ...",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "decode", Usage: "treat arguments as code words"},
			&cli.BoolFlag{Name: "skip-unknown", Usage: "drop characters without a code word"},
		},
		Action: func(c *cli.Context) error {
			args := c.Args().Slice()
			if c.Bool("decode") {
				var words []string
				for _, a := range args {
					words = append(words, strings.Fields(a)...)
				}
				text, err := phonetic.Decode(words)
				if err != nil {
					return r.fail("nato", err)
				}
				_, err = fmt.Fprintln(r.out, text)
				return err
			}

			var opts []phonetic.Option
			if c.Bool("skip-unknown") {
				opts = append(opts, phonetic.WithSkipUnknown())
			}
			spelled, err := phonetic.EncodeString(strings.Join(args, " "), opts...)
			if err != nil {
				return r.fail("nato", err)
			}
			_, err = fmt.Fprintln(r.out, spelled)
			return err
		},
	}
}

func (r *runner) scheduleCommand() *cli.Command {
	return &cli.Command{
		Name:  "schedule",
		Usage: "simulate aging priority or least-slack-time scheduling from a YAML file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Required: true, Usage: "YAML job file"},
			&cli.StringFlag{Name: "algorithm", Aliases: []string{"a"}, Usage: "override the file's algorithm (aging or lst)"},
		},
		Action: func(c *cli.Context) error {
			var sf scheduleFile
			if err := loadYAML(c.String("file"), &sf); err != nil {
				return r.fail("schedule", err)
			}
			if alg := c.String("algorithm"); alg != "" {
				sf.Algorithm = alg
			}

			res, err := runSchedule(sf)
			if err != nil {
				return r.fail("schedule", err)
			}
			r.logger.WithFields(logrus.Fields{
				"algorithm": sf.Algorithm,
				"jobs":      len(res.Order),
				"missed":    len(res.Missed),
			}).Info("schedule simulated")

			return r.printSchedule(res)
		},
	}
}

// runSchedule dispatches sf to the configured scheduler.
func runSchedule(sf scheduleFile) (*sched.Result, error) {
	switch strings.ToLower(sf.Algorithm) {
	case "aging", "":
		var opts []sched.AgingOption
		if sf.Aging.Interval != 0 {
			if sf.Aging.Interval < 0 {
				return nil, fmt.Errorf("aging interval must be positive, got %d", sf.Aging.Interval)
			}
			opts = append(opts, sched.WithAgingInterval(sf.Aging.Interval))
		}
		if sf.Aging.Step != nil {
			if *sf.Aging.Step < 0 {
				return nil, fmt.Errorf("aging step must be non-negative, got %d", *sf.Aging.Step)
			}
			opts = append(opts, sched.WithAgingStep(*sf.Aging.Step))
		}
		return sched.Aging(sf.Processes, opts...)
	case "lst", "least-slack":
		var opts []sched.SlackOption
		if sf.Horizon != 0 {
			if sf.Horizon < 0 {
				return nil, fmt.Errorf("horizon must be positive, got %d", sf.Horizon)
			}
			opts = append(opts, sched.WithHorizon(sf.Horizon))
		}
		return sched.LeastSlack(sf.Tasks, opts...)
	default:
		return nil, fmt.Errorf("unknown algorithm %q (want aging or lst)", sf.Algorithm)
	}
}

func (r *runner) printSchedule(res *sched.Result) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "order: %s\n", strings.Join(res.Order, " "))
	for _, id := range res.Order {
		s := res.Stats[id]
		fmt.Fprintf(&sb, "%s start=%d finish=%d waiting=%d turnaround=%d\n",
			id, s.Start, s.Finish, s.Waiting, s.Turnaround)
	}
	if res.Timeline != nil {
		slots := make([]string, len(res.Timeline))
		for i, id := range res.Timeline {
			if id == "" {
				id = "-"
			}
			slots[i] = id
		}
		fmt.Fprintf(&sb, "timeline: %s\n", strings.Join(slots, " "))
		fmt.Fprintf(&sb, "missed: %s\n", strings.Join(res.Missed, " "))
	}
	fmt.Fprintf(&sb, "avg waiting=%.2f turnaround=%.2f\n", res.AvgWaiting(), res.AvgTurnaround())
	_, err := fmt.Fprint(r.out, sb.String())

	return err
}

func (r *runner) traverseCommand() *cli.Command {
	return &cli.Command{
		Name:      "traverse",
		Usage:     "traverse a binary tree given in level order (null marks a gap)",
		ArgsUsage: "values",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "order", Aliases: []string{"o"}, Value: "in", Usage: "pre, in, post or level"},
		},
		Action: func(c *cli.Context) error {
			order, err := tree.ParseOrder(c.String("order"))
			if err != nil {
				return r.fail("traverse", err)
			}
			vals, err := parseLevelOrder(c.Args().First())
			if err != nil {
				return r.fail("traverse", err)
			}
			root := tree.FromLevelOrder(vals)
			if order == tree.OrderLevel {
				_, err = fmt.Fprintln(r.out, tree.LevelOrder(root))
				return err
			}
			out, err := tree.Walk(root, order)
			if err != nil {
				return r.fail("traverse", err)
			}
			_, err = fmt.Fprintln(r.out, out)
			return err
		},
	}
}
