// Package game runs a three-level game for one player.
//
// Level n asks one question of tier n under a per-level time limit. A correct
// answer scores +10; a wrong answer, a skip or an expired timer scores -5 and
// appends the question to the player's missed list. The profile is persisted
// after every scored round. A game counts as won when the sum of its three
// round scores is positive.
//
// The timer itself belongs to the caller: when a round's TimeLimit elapses the
// caller invokes Game.Expire instead of Game.Submit.
package game
