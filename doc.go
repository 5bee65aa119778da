// Package scicalc is a set of small, independent exercises in pure Go:
// clock arithmetic, budget ledgers, paper-style arithmetic layout, shape
// geometry, a probability simulator and a sign-agnostic primality test.
//
// Nothing is shared between the subpackages; import only what you need:
//
//	timecalc/  add a duration to "H:MM AM|PM" with weekday and day rollover
//	budget/    decimal category ledgers and the percentage spend chart
//	arranger/  vertical arrangement of up to five +/- problems
//	shape/     Rectangle and Square behind one Shape interface
//	hat/       colored-ball hat and Monte-Carlo draw experiments
//	prime/     primality for negative and positive integers
//
// Every function is synchronous and free of shared state. Hat and Category
// are small mutable values owned by a single caller.
//
// examples/ holds a runnable program that exercises every package:
//
//	go run ./examples
package scicalc
