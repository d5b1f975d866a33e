// Package stats reports a player's dashboard and the global leaderboard.
package stats
