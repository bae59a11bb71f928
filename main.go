package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/exp/slices"

	"github.com/bent101/go-sedecordle-solving/pattern"
	"github.com/bent101/go-sedecordle-solving/solver"
	"github.com/bent101/go-sedecordle-solving/words"
)

// parseLogLevel falls back to info for empty or unknown names.
func parseLogLevel(s string) (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.InfoLevel, err
	}
	if lvl == zerolog.NoLevel {
		return zerolog.InfoLevel, nil
	}
	return lvl, nil
}

func main() {
	_ = godotenv.Load()

	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	lvl, err := parseLogLevel(cfg.LogLevel)
	zerolog.SetGlobalLevel(lvl)
	if err != nil {
		log.Warn().Err(err).Str("level", cfg.LogLevel).Msg("unknown log level, using info")
	}

	answers, err := words.Load(cfg.AnswersPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.AnswersPath).Msg("failed to load answer words")
	}
	allowed := slices.Clone(answers)
	if cfg.GuessesPath != "" {
		allowed, err = words.Load(cfg.GuessesPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.GuessesPath).Msg("failed to load allowed guesses")
		}
	}
	log.Info().Int("count", len(answers)).Msg("loaded answer words")
	log.Info().Int("count", len(allowed)).Msg("loaded allowed guesses")

	cache := pattern.NewCache()
	if cfg.PatternCachePath != "" {
		if err := cache.Load(cfg.PatternCachePath); err != nil {
			log.Warn().Err(err).Msg("ignoring pattern cache")
		}
	}

	selector := solver.Selector{
		Scorer:  solver.NewScorer(cache),
		ScanCap: cfg.ScanCap,
		Workers: cfg.Workers,
		NewProgress: func(total int) solver.Progress {
			fmt.Println("\nCalculating best guess...")
			return progressbar.Default(int64(total), "Analyzing words")
		},
	}

	session, err := solver.NewSession(answers, allowed, selector)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start session")
	}

	var collaborator solver.Collaborator = newConsole(os.Stdin, os.Stdout)
	if len(cfg.Targets) > 0 {
		log.Info().Strs("targets", cfg.Targets).Msg("simulating against known solutions")
		collaborator = solver.HiddenTargets{Targets: cfg.Targets, Oracle: cache}
	}

	printBanner(os.Stdout)

	err = solver.Play(session, collaborator, cfg.MaxRounds, solver.Hooks{
		BeforeRound: func(round int, s *solver.Session) {
			fmt.Printf("\n%s\n", rule(fmt.Sprintf(" ATTEMPT %d ", round), '='))
			printStatus(os.Stdout, s.Status())
		},
		OnGuess: func(g solver.Guess) {
			fmt.Printf("\nNEXT GUESS: %s (%.2f bits)\n", g.Word, g.Bits)
			fmt.Println("Enter this word in ALL active games, then provide feedback:")
		},
		OnSolved: func(*solver.Session) {
			fmt.Println("\nCONGRATULATIONS! ALL GAMES SOLVED!")
		},
	})

	if cfg.PatternCachePath != "" {
		if err := cache.Save(cfg.PatternCachePath); err != nil {
			log.Warn().Err(err).Msg("could not save pattern cache")
		}
	}

	switch {
	case errors.Is(err, solver.ErrRoundLimit):
		printStatus(os.Stdout, session.Status())
		log.Warn().Int("rounds", session.Round()).Int("unsolved", len(session.ActiveIndexes())).Msg("out of attempts")
		os.Exit(1)
	case err != nil:
		log.Fatal().Err(err).Msg("game aborted")
	}
}
