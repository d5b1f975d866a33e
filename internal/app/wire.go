package app

import (
	"fmt"
	"io"
	"log"
	"os"

	"mathclash/internal/checker"
	"mathclash/internal/crypto"
	"mathclash/internal/domain"
	"mathclash/internal/generator"
	gamesvc "mathclash/internal/services/game"
	reviewsvc "mathclash/internal/services/review"
	statssvc "mathclash/internal/services/stats"
	"mathclash/internal/store"
)

// Wire bundles all stores, services, and helpers for the CLI.
type Wire struct {
	Config    Config
	Seed      int64
	Logger    *log.Logger
	Profiles  domain.ProfileStore
	Generator *generator.Generator
	Checker   checker.Policy
	Game      *gamesvc.Service
	Review    domain.ReviewService
	Stats     domain.StatsService
}

// NewWire constructs the dependency graph from cfg. Diagnostics go to logOut
// when cfg.Verbose is set.
func NewWire(cfg Config, logOut io.Writer) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, fmt.Errorf("create home: %w", err)
	}
	logger := NewLogger(cfg.Verbose, logOut)

	// File-based store, sealed when a passphrase is configured
	var profiles *store.ProfileFileStore
	if cfg.Passphrase != "" {
		profiles = store.NewSealedProfileFileStore(cfg.Home, cfg.Passphrase)
	} else {
		profiles = store.NewProfileFileStore(cfg.Home)
	}
	profiles.SetLogger(logger)

	var seed int64
	if cfg.Seed != nil {
		seed = *cfg.Seed
	} else {
		var err error
		if seed, err = crypto.NewSeed(); err != nil {
			return nil, err
		}
	}
	var opts []generator.Option
	if cfg.LaxDivision {
		opts = append(opts, generator.WithSingleDivisionRetry())
	}
	gen := generator.NewSeeded(seed, opts...)
	logger.Printf("generator seed %d (lax division: %v)", seed, cfg.LaxDivision)

	check := checker.DefaultPolicy

	// High-level services
	game := gamesvc.New(profiles, gen, check, gamesvc.Config{
		TimeLimits: cfg.LevelTimes,
		Logger:     logger,
	})
	review := reviewsvc.New(profiles, check, logger)
	stats := statssvc.New(profiles)

	return &Wire{
		Config:    cfg,
		Seed:      seed,
		Logger:    logger,
		Profiles:  profiles,
		Generator: gen,
		Checker:   check,
		Game:      game,
		Review:    review,
		Stats:     stats,
	}, nil
}
