package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pinder/config"
	"github.com/katalvlaran/pinder/logging"
	"github.com/katalvlaran/pinder/session"
	"github.com/katalvlaran/pinder/tui"
)

// rootOptions holds the raw flag values.
type rootOptions struct {
	configPath string
	diagonal   bool
	seed       int64
	algorithm  string
	view       string
	logLevel   string
	logFile    string
	logJSON    bool
	print      bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "pinder [ROWS] [COLUMNS]",
		Short: "Grid path-finding playground (BFS, Dijkstra, A*)",
		Long: `pinder draws a board with a start, a goal, walls and weighted cells and
lets you run BFS, Dijkstra and A* on it, showing the path, the direction
each cell was reached from, or the accumulated cost.

ROWS and COLUMNS default to 16 and must both be given, each at least 5.`,
		Args:         boardArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	f.BoolVarP(&opts.diagonal, "diagonal", "d", false, "allow diagonal moves")
	f.Int64Var(&opts.seed, "seed", 0, "random seed for the board (0 = time based)")
	f.StringVarP(&opts.algorithm, "algorithm", "a", "astar", "algorithm for --print: astar, bfs or dijkstra")
	f.StringVar(&opts.view, "view", "path", "overlay for --print: path, came-from, going-to or cost")
	f.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	f.StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	f.BoolVar(&opts.logJSON, "log-json", false, "log in JSON")
	f.BoolVarP(&opts.print, "print", "p", false, "run one search and print the board instead of opening the UI")

	return cmd
}

// boardArgs accepts no positional arguments or exactly ROWS and COLUMNS.
func boardArgs(_ *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return nil
	case 2:
		for i, name := range []string{"ROWS", "COLUMNS"} {
			if _, err := strconv.Atoi(args[i]); err != nil {
				return fmt.Errorf("%s must be an integer, got %q", name, args[i])
			}
		}
		return nil
	default:
		return fmt.Errorf("expected no arguments or ROWS and COLUMNS, got %d argument(s)", len(args))
	}
}

// resolveConfig layers Default, the config file, changed flags and the
// positional arguments, then validates the result.
func resolveConfig(cmd *cobra.Command, args []string, opts *rootOptions) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return cfg, err
		}
	}

	f := cmd.Flags()
	if f.Changed("diagonal") {
		cfg.Diagonal = opts.diagonal
	}
	if f.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if f.Changed("algorithm") {
		cfg.Algorithm = opts.algorithm
	}
	if f.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if f.Changed("log-file") {
		cfg.LogFile = opts.logFile
	}
	if f.Changed("log-json") {
		cfg.LogJSON = opts.logJSON
	}
	if len(args) == 2 {
		// Already checked by boardArgs.
		cfg.Rows, _ = strconv.Atoi(args[0])
		cfg.Columns, _ = strconv.Atoi(args[1])
	}

	return cfg, cfg.Validate()
}

func run(cmd *cobra.Command, args []string, opts *rootOptions) error {
	cfg, err := resolveConfig(cmd, args, opts)
	if err != nil {
		return err
	}
	view, err := session.ParseView(opts.view)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	interactive := !opts.print && isTerminal(out)

	// The UI owns the terminal: without a log file, logs are dropped.
	var fallback io.Writer = cmd.ErrOrStderr()
	if interactive {
		fallback = io.Discard
	}
	logger, closer, err := logging.New(cfg.Logging(), fallback)
	if err != nil {
		return err
	}
	defer closer.Close()

	board, err := cfg.NewBoard()
	if err != nil {
		return err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sess, err := session.New(board,
		session.WithLogger(logger),
		session.WithRand(rand.New(rand.NewSource(seed))),
	)
	if err != nil {
		return err
	}
	sess.Randomize()

	logger.Info("pinder starting",
		"rows", cfg.Rows,
		"columns", cfg.Columns,
		"connectivity", board.Connectivity().String(),
		"seed", seed,
		"interactive", interactive,
	)

	if interactive {
		return tui.Run(sess)
	}
	return printResult(out, sess, cfg.AlgorithmKind(), view)
}

// printResult runs algorithm a once and writes the board under view v
// followed by the status line.
func printResult(w io.Writer, sess *session.Session, a session.Algorithm, v session.View) error {
	sess.Run(a)
	if _, err := io.WriteString(w, sess.Render(v)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, sess.Status())
	return err
}

// isTerminal reports whether w is a terminal the UI can take over.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
