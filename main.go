package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const _defaultAnswersFile = "answers.yaml"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := newRootCommand(os.Stderr).ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// app carries state shared by all subcommands once the configuration has
// been loaded.
type app struct {
	v   *viper.Viper
	cfg *Config
	src *inputSource
}

// inputs opens the cache and fetcher on first use, so commands reading
// explicit input files never touch them.
func (a *app) inputs() (*inputSource, error) {
	if a.src == nil {
		src, err := newInputSource(a.cfg)
		if err != nil {
			return nil, err
		}
		a.src = src
	}
	return a.src, nil
}

func mustBindPFlag(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("bind %v: %v", key, err))
	}
}

func newRootCommand(logOutput io.Writer) *cobra.Command {
	var (
		a          = &app{v: newViper()}
		configFile string
	)

	root := &cobra.Command{
		Use:          "aoc2022",
		Short:        "Advent of Code 2022 solutions",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := readConfigFile(a.v, configFile); err != nil {
				return err
			}
			cfg, err := loadConfig(a.v)
			if err != nil {
				return err
			}
			if err := initLog(logOutput, cfg.LogLevel); err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default ./aoc2022.yaml)")
	flags.String("log-level", _defaultLogLevel, "log level (DEBUG, INFO, WARNING, ERROR)")
	flags.String("cache-dir", _defaultCacheDir, "directory holding downloaded inputs")
	flags.String("session-file", _defaultSessionFile, "file holding the adventofcode.com session token")
	mustBindPFlag(a.v, "log_level", flags.Lookup("log-level"))
	mustBindPFlag(a.v, "cache_dir", flags.Lookup("cache-dir"))
	mustBindPFlag(a.v, "session_file", flags.Lookup("session-file"))

	root.AddCommand(a.newRunCommand(), a.newFetchCommand(), a.newCheckCommand())
	return root
}

func (a *app) newRunCommand() *cobra.Command {
	var inputFile string
	cmd := &cobra.Command{
		Use:   "run [day...]",
		Short: "Solve puzzles and print both answers (all days when none given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := parseDays(args)
			if err != nil {
				return err
			}
			if inputFile != "" && len(days) != 1 {
				return errors.New("--input needs exactly one day")
			}
			w := cmd.OutOrStdout()
			for _, day := range days {
				p, err := lookupPuzzle(day)
				if err != nil {
					return err
				}
				ans, err := a.solve(cmd.Context(), p, inputFile)
				if err != nil {
					return fmt.Errorf("day %v: %w", day, err)
				}
				fmt.Fprintf(w, "--- Day %v: %v ---\n", p.Day, p.Title)
				fmt.Fprintln(w, "Part 1:", ans.Part1)
				fmt.Fprintln(w, "Part 2:", ans.Part2)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "read the puzzle input from this file")
	cmd.Flags().Int("row", _defaultDay15Row, "day 15: row to count excluded positions on")
	cmd.Flags().Int("max", _defaultDay15Max, "day 15: largest coordinate of the search area")
	mustBindPFlag(a.v, "day15.row", cmd.Flags().Lookup("row"))
	mustBindPFlag(a.v, "day15.max", cmd.Flags().Lookup("max"))
	return cmd
}

func (a *app) newFetchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch day...",
		Short: "Download puzzle inputs into the cache",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := parseDays(args)
			if err != nil {
				return err
			}
			src, err := a.inputs()
			if err != nil {
				return err
			}
			if src.fetcher == nil {
				return ErrNoSession
			}
			for _, day := range days {
				data, err := src.fetcher.Fetch(cmd.Context(), day)
				if err != nil {
					return err
				}
				if err := src.cache.Store(day, data); err != nil {
					return err
				}
				log.Infof("day %v: cached %v bytes", day, len(data))
			}
			return nil
		},
	}
}

func (a *app) newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [answers.yaml]",
		Short: "Solve puzzles and compare with known answers",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := _defaultAnswersFile
			if len(args) > 0 {
				name = args[0]
			}
			file, err := os.Open(name)
			if err != nil {
				return err
			}
			defer file.Close()
			expected, err := readAnswers(file)
			if err != nil {
				return err
			}

			solve := func(ctx context.Context, day int) (Answer, error) {
				p, err := lookupPuzzle(day)
				if err != nil {
					return Answer{}, err
				}
				return a.solve(ctx, p, "")
			}
			mismatches, err := checkAnswers(cmd.Context(), expected, solve)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, m := range mismatches {
				fmt.Fprintln(w, m)
			}
			if len(mismatches) > 0 {
				return fmt.Errorf("%v of %v days failed", countDays(mismatches), len(expected))
			}
			fmt.Fprintf(w, "all %v days OK\n", len(expected))
			return nil
		},
	}
}

func (a *app) solve(ctx context.Context, p Puzzle, inputFile string) (Answer, error) {
	data, err := a.readInput(ctx, p.Day, inputFile)
	if err != nil {
		return Answer{}, err
	}
	return p.Solve(ctx, a.cfg, bytes.NewReader(data))
}

// readInput reads inputFile when given, otherwise the cached or downloaded
// input for day.
func (a *app) readInput(ctx context.Context, day int, inputFile string) ([]byte, error) {
	if inputFile != "" {
		return os.ReadFile(inputFile)
	}
	src, err := a.inputs()
	if err != nil {
		return nil, err
	}
	return src.Open(ctx, day)
}

func parseDays(args []string) ([]int, error) {
	if len(args) == 0 {
		return puzzleDays(), nil
	}
	days := make([]int, len(args))
	for i, s := range args {
		day, err := strconv.Atoi(s)
		if err != nil || day < 1 || day > 25 {
			return nil, fmt.Errorf("bad day %q", s)
		}
		days[i] = day
	}
	return days, nil
}

func countDays(mismatches []mismatch) int {
	seen := make(map[int]bool)
	for _, m := range mismatches {
		seen[m.Day] = true
	}
	return len(seen)
}
