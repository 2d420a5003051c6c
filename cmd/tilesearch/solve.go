package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tilestar/astar"
	"github.com/katalvlaran/tilestar/metrics"
	"github.com/katalvlaran/tilestar/puzzle"
)

// ErrNoBoard indicates that no start board was selected.
var ErrNoBoard = errors.New("tilesearch: give a board file, --sample or --scramble")

// boardFlags select the start board of solve.
type boardFlags struct {
	sample   int
	scramble int
	width    int
	seed     int64
}

func (f *boardFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.sample, "sample", -1, "solve the built-in sample with this index")
	cmd.Flags().IntVar(&f.scramble, "scramble", 0, "solve a random board this many moves from the goal")
	cmd.Flags().IntVar(&f.width, "width", 4, "board width for --scramble")
	cmd.Flags().Int64Var(&f.seed, "seed", 1, "random seed for --scramble")
}

// load returns the start board selected by args and flags.
func (f *boardFlags) load(args []string) (puzzle.Board, int, error) {
	switch {
	case len(args) == 1:
		r, err := os.Open(args[0])
		if err != nil {
			return puzzle.Board{}, 0, errors.Wrap(err, "open board")
		}
		defer r.Close()

		return puzzle.Parse(args[0], r)
	case f.sample >= 0:
		samples := puzzle.Samples()
		if f.sample >= len(samples) {
			return puzzle.Board{}, 0, errors.Errorf("sample %d out of range [0,%d)", f.sample, len(samples))
		}

		return samples[f.sample], puzzle.SampleWidth, nil
	case f.scramble > 0:
		if f.width < puzzle.MinWidth || f.width > puzzle.MaxWidth {
			return puzzle.Board{}, 0, errors.Wrapf(puzzle.ErrBadWidth, "width %d", f.width)
		}
		rng := rand.New(rand.NewSource(f.seed))

		return puzzle.Scramble(f.width, f.scramble, rng), f.width, nil
	default:
		return puzzle.Board{}, 0, ErrNoBoard
	}
}

// searchFlags override the search section of the configuration.
type searchFlags struct {
	openSet    string
	closedSet  string
	heuristic  string
	maxNodes   int
	statistics bool
	metricsOut string
}

func (f *searchFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.openSet, "open-set", "", "override search.open_set (hash, tree, heap)")
	cmd.Flags().StringVar(&f.closedSet, "closed-set", "", "override search.closed_set (hash, tree)")
	cmd.Flags().StringVar(&f.heuristic, "heuristic", "", "override search.heuristic (manhattan, misplaced)")
	cmd.Flags().IntVar(&f.maxNodes, "max-nodes", 0, "override search.max_nodes")
	cmd.Flags().BoolVar(&f.statistics, "stats", false, "override search.statistics")
	cmd.Flags().StringVar(&f.metricsOut, "metrics-out", "", "override metrics.out")
}

// apply copies the flags the user actually set into cfg.
func (f *searchFlags) apply(cmd *cobra.Command, cfg *Config) error {
	fl := cmd.Flags()
	if fl.Changed("open-set") {
		cfg.Search.OpenSet = f.openSet
	}
	if fl.Changed("closed-set") {
		cfg.Search.ClosedSet = f.closedSet
	}
	if fl.Changed("heuristic") {
		cfg.Search.Heuristic = f.heuristic
	}
	if fl.Changed("max-nodes") {
		cfg.Search.MaxNodes = f.maxNodes
	}
	if fl.Changed("stats") {
		cfg.Search.Statistics = f.statistics
	}
	if fl.Changed("metrics-out") {
		cfg.Metrics.Out = f.metricsOut
	}

	return cfg.Validate()
}

func newSolveCmd(a *app) *cobra.Command {
	var bf boardFlags
	var sf searchFlags
	cmd := &cobra.Command{
		Use:   "solve [board-file]",
		Short: "Find a shortest solution of one board",
		Long: `Solve reads a board (whitespace-separated tiles in row-major order, 0 for
the blank, '#' comments) or picks a built-in sample, and prints the moves of
a shortest solution.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := sf.apply(cmd, &a.cfg); err != nil {
				return err
			}
			start, width, err := bf.load(args)
			if err != nil {
				return err
			}

			return a.solve(cmd, start, width)
		},
	}
	bf.register(cmd)
	sf.register(cmd)

	return cmd
}

func (a *app) solve(cmd *cobra.Command, start puzzle.Board, width int) error {
	w := cmd.OutOrStdout()
	printStart(w, width, start)
	if !puzzle.Solvable(width, start) {
		a.log.Warn("board is unsolvable", "width", width)
		fmt.Fprintf(w, "Path NOT found for START state:\n%s\n", puzzle.Format(width, start))

		return nil
	}

	h, _ := puzzle.ParseHeuristic(a.cfg.Search.Heuristic)
	g, err := puzzle.NewGraph(width, puzzle.WithHeuristic(h))
	if err != nil {
		return err
	}
	opts, err := a.cfg.Search.Options(a.log)
	if err != nil {
		return err
	}
	s := astar.New[puzzle.Board](opts...)

	fmt.Fprint(w, "Computing...")
	began := time.Now()
	res, serr := s.Search(g, start)
	elapsed := time.Since(began)
	fmt.Fprintln(w, "done")
	a.log.Info("search finished",
		"phase", s.Phase(), "cost", res.Cost, "closed", res.Stats.ClosedSize,
		"open", res.Stats.OpenSize, "elapsed", elapsed)

	printOutcome(w, width, start, s.Phase(), res, a.cfg.Search.Statistics)

	if a.cfg.Metrics.Out != "" {
		rec := metrics.NewRecorder(a.cfg.Metrics.Namespace)
		rec.Observe(a.cfg.Search.labels(),
			s.Phase(), res.Stats, res.Cost, elapsed)
		if err := rec.WriteTextfile(a.cfg.Metrics.Out); err != nil {
			return errors.Wrap(err, "write metrics")
		}
	}

	return serr
}
