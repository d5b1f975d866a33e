// Package review lets a player work back through missed questions.
//
// Questions are replayed oldest first. A correct answer earns the usual +10
// and removes the question; a wrong answer leaves it at the front. Typing the
// skip sentinel drops the question without scoring.
package review
