// Package commands defines the mathclash CLI and wires dependencies for subcommands.
//
// Commands
//
//   - play         Play a timed three-level game
//   - review       Retry previously missed questions
//   - stats        Show a player's dashboard
//   - leaderboard  Rank players by total score
//   - question     Print generated questions for a tier
//   - eval         Evaluate an arithmetic expression
//   - check        Check an answer against a reference value
//
// # Implementation
//
// The root command reads MATHCLASH_* environment configuration, applies flag
// overrides, and builds the dependency graph (store, generator, checker,
// services) before any subcommand runs. Round timers live here: each answer
// is read under a context deadline equal to the level's time limit, and an
// expired deadline is scored through Game.Expire.
package commands
