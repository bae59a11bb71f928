package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bent101/go-sedecordle-solving/solver"
	"github.com/bent101/go-sedecordle-solving/words"
)

type Config struct {
	AnswersPath      string
	GuessesPath      string
	ScanCap          int
	MaxRounds        int
	Workers          int
	PatternCachePath string
	Targets          []string
	LogLevel         string
}

// loadConfig reads the environment and then lets flags in args override it.
func loadConfig(args []string) (Config, error) {
	cfg := Config{
		AnswersPath:      getEnv("SEDECORDLE_ANSWERS", "io/answers.txt"),
		GuessesPath:      getEnv("SEDECORDLE_GUESSES", ""),
		PatternCachePath: getEnv("SEDECORDLE_PATTERN_CACHE", ""),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}

	var err error
	if cfg.ScanCap, err = getEnvInt("SEDECORDLE_SCAN_CAP", solver.DefaultScanCap); err != nil {
		return cfg, err
	}
	if cfg.MaxRounds, err = getEnvInt("SEDECORDLE_MAX_ROUNDS", solver.DefaultMaxRounds); err != nil {
		return cfg, err
	}
	if cfg.Workers, err = getEnvInt("SEDECORDLE_WORKERS", 0); err != nil {
		return cfg, err
	}
	targets := getEnv("SEDECORDLE_TARGETS", "")

	fs := flag.NewFlagSet("sedecordle", flag.ContinueOnError)
	fs.StringVar(&cfg.AnswersPath, "answers", cfg.AnswersPath, "answer word list, one word per line")
	fs.StringVar(&cfg.GuessesPath, "guesses", cfg.GuessesPath, "allowed guess list (defaults to the answer list)")
	fs.IntVar(&cfg.ScanCap, "cap", cfg.ScanCap, "number of allowed guesses scored per round, 0 for all")
	fs.IntVar(&cfg.MaxRounds, "rounds", cfg.MaxRounds, "maximum number of guesses")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "concurrent scoring workers, 0 for GOMAXPROCS")
	fs.StringVar(&cfg.PatternCachePath, "cache", cfg.PatternCachePath, "pattern cache file to load and save")
	fs.StringVar(&targets, "simulate", targets, "comma separated solutions, one per board, to play against instead of prompting")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if targets != "" {
		cfg.Targets, err = parseTargets(targets)
		if err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

func parseTargets(s string) ([]string, error) {
	var out []string
	for _, t := range strings.Split(s, ",") {
		w := strings.ToUpper(strings.TrimSpace(t))
		if !words.Valid(w) {
			return nil, fmt.Errorf("simulate: %q is not a 5-letter word", t)
		}
		out = append(out, w)
	}
	if len(out) != solver.Boards {
		return nil, fmt.Errorf("simulate: need %d targets, got %d", solver.Boards, len(out))
	}
	return out, nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", k, err)
	}
	return n, nil
}
