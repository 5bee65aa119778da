// Package hat simulates drawing colored balls from a hat and estimates
// draw probabilities by repeated experiment.
//
// 🚀 What:
//
//	A Hat holds balls described by an explicit color → count map:
//
//	  h, _ := hat.New(map[string]int{"blue": 3, "red": 2, "green": 6})
//
//	Draw removes balls uniformly at random without replacement. Experiment
//	clones the hat for every trial, draws from the clone and counts the
//	trials in which at least the expected number of each color came out.
//
// ⚙️ Determinism:
//
//   - Balls are laid out in sorted color order, never in map order.
//   - Randomness comes from a *rand.Rand chosen with WithSeed or WithRand;
//     without either, a fixed default seed is used, so identical calls give
//     identical results.
//
// Complexity:
//
//   - New: O(total balls).
//   - Draw(n): O(len) to pick and compact.
//   - Experiment: O(trials · len).
//
// Errors:
//
//   - ErrEmptyHat, ErrNegativeCount: invalid ball map.
//   - ErrNegativeDraw: negative draw count.
//   - ErrNilHat, ErrNoTrials: invalid Experiment arguments.
package hat
