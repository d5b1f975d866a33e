// Package generator synthesizes random arithmetic questions for a difficulty
// tier.
//
// Tier 1 questions have exactly one operator and operands in [1, 10]. Tiers 2
// and 3 have two or three operators and operands in [5*tier, 15*tier].
//
// Operators are redrawn so that the same operator never appears twice in a
// row and * and / are never adjacent. When a division is drawn, the divisor
// is steered towards a value that divides the running total of the
// expression built so far, which keeps answers short and friendly to the
// checker's tolerances. At tier 3 at most one division is emitted; the
// WithSingleDivisionRetry option restores the looser single-redraw rule
// under which a second division can occasionally appear.
//
// Every retry loop is bounded. When a bound is hit the generator relaxes the
// constraint instead of looping, so Generate never fails.
//
// A Generator owns its random stream. Two generators built from the same
// seed produce the same questions in the same order.
package generator
