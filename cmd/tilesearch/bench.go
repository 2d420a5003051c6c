package main

import (
	"fmt"
	"math/rand"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tilestar/astar"
	"github.com/katalvlaran/tilestar/closedset"
	"github.com/katalvlaran/tilestar/metrics"
	"github.com/katalvlaran/tilestar/openset"
	"github.com/katalvlaran/tilestar/puzzle"
)

// benchCase is one start board of a benchmark run.
type benchCase struct {
	name  string
	width int
	board puzzle.Board
}

func newBenchCmd(a *app) *cobra.Command {
	var (
		samples    []int
		scramble   int
		width      int
		seed       int64
		count      int
		metricsOut string
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Solve boards with every open/closed set pair and compare",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("metrics-out") {
				a.cfg.Metrics.Out = metricsOut
			}
			cases, err := benchCases(samples, scramble, width, seed, count)
			if err != nil {
				return err
			}

			return a.bench(cmd, cases)
		},
	}
	cmd.Flags().IntSliceVar(&samples, "samples", []int{0, 1}, "built-in samples to solve")
	cmd.Flags().IntVar(&scramble, "scramble", 0, "also solve --count random boards this many moves from the goal")
	cmd.Flags().IntVar(&width, "width", 4, "board width for --scramble")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed for --scramble")
	cmd.Flags().IntVar(&count, "count", 3, "number of scrambled boards")
	cmd.Flags().StringVar(&metricsOut, "metrics-out", "", "write Prometheus text exposition to this file")

	return cmd
}

func benchCases(samples []int, scramble, width int, seed int64, count int) ([]benchCase, error) {
	all := puzzle.Samples()
	var cases []benchCase
	for _, i := range samples {
		if i < 0 || i >= len(all) {
			return nil, errors.Errorf("sample %d out of range [0,%d)", i, len(all))
		}
		cases = append(cases, benchCase{name: fmt.Sprintf("sample-%d", i), width: puzzle.SampleWidth, board: all[i]})
	}
	if scramble > 0 {
		if width < puzzle.MinWidth || width > puzzle.MaxWidth {
			return nil, errors.Wrapf(puzzle.ErrBadWidth, "width %d", width)
		}
		rng := rand.New(rand.NewSource(seed))
		for i := 0; i < count; i++ {
			cases = append(cases, benchCase{
				name:  fmt.Sprintf("scramble-%dx%d-%d", width, width, i),
				width: width,
				board: puzzle.Scramble(width, scramble, rng),
			})
		}
	}

	return cases, nil
}

// bench solves every case once per open/closed pair, sharing everything else
// in the search configuration.
func (a *app) bench(cmd *cobra.Command, cases []benchCase) error {
	base, err := a.cfg.Search.Options(a.log)
	if err != nil {
		return err
	}
	h, _ := puzzle.ParseHeuristic(a.cfg.Search.Heuristic)
	rec := metrics.NewRecorder(a.cfg.Metrics.Namespace)

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "board\topen-set\tclosed-set\tphase\tcost\texpanded\tfrontier\tnodes\ttime\t")
	for _, c := range cases {
		g, err := puzzle.NewGraph(c.width, puzzle.WithHeuristic(h))
		if err != nil {
			return err
		}
		for _, ok := range openset.Kinds {
			for _, ck := range closedset.Kinds {
				opts := append(append([]astar.Option{}, base...), astar.WithOpenSet(ok), astar.WithClosedSet(ck))
				s := astar.New[puzzle.Board](opts...)
				began := time.Now()
				res, serr := s.Search(g, c.board)
				elapsed := time.Since(began)
				if serr != nil {
					a.log.Warn("search aborted", "board", c.name, "open_set", ok, "closed_set", ck, "err", serr)
				}
				rec.Observe(metrics.Labels{OpenSet: ok.String(), ClosedSet: ck.String()},
					s.Phase(), res.Stats, res.Cost, elapsed)
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%d\t%d\t%d\t%s\t\n",
					c.name, ok, ck, s.Phase(), res.Cost, res.Stats.ClosedSize, res.Stats.OpenSize, res.Stats.Nodes,
					elapsed.Round(time.Microsecond))
			}
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if a.cfg.Metrics.Out != "" {
		if err := rec.WriteTextfile(a.cfg.Metrics.Out); err != nil {
			return errors.Wrap(err, "write metrics")
		}
		a.log.Info("metrics written", "path", a.cfg.Metrics.Out)
	}

	return nil
}
