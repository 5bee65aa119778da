package hat

import "math/rand"

// defaultRNGSeed is used when no seed or generator is supplied.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed==0 selects defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// sampleIndices picks k distinct indices from [0,n) with a partial
// Fisher–Yates shuffle and returns them in draw order.
//
// Complexity: O(n) time and space.
func sampleIndices(n, k int, r *rand.Rand) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + r.Intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:k]
}
