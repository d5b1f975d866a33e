// Package checker decides whether a typed answer matches a reference value.
//
// Input is either a plain number ("12", "-3.5") or a fraction "a/b". The
// check never fails: anything that does not parse is simply wrong.
//
// Two tolerances apply. A parsed value within DecimalTolerance of the
// reference is accepted. When the reference is within ExactTolerance of its
// own floor, a parsed value within ExactTolerance of that floor is accepted
// as well, which absorbs floating-point drift in generated answers.
package checker
