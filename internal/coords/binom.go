// Package coords implements the pure cube-state-to-integer functions
// pruning tables are indexed by. Each function here is grounded on the
// combinatorial coordinate scheme a reference cubie-level solver uses:
// edge/corner orientation read off as base-2 or base-3 digits, and
// slice/orbit membership read off as a position in the combinatorial
// number system (the standard "choose k of n" ranking used for the
// classic UDSlice coordinate).
package coords

// binom[n][k] is n choose k, for n,k <= 12, which covers every
// combinatorial coordinate this package needs (C(12,4) is the
// largest).
var binom [13][13]int

func init() {
	for n := 0; n <= 12; n++ {
		binom[n][0] = 1
		for k := 1; k <= n; k++ {
			binom[n][k] = binom[n-1][k-1]
			if k <= n-1 {
				binom[n][k] += binom[n-1][k]
			}
		}
	}
}

// Binomial returns n choose k, or 0 if k is out of range.
func Binomial(n, k int) int {
	if k < 0 || n < 0 || k > n || n > 12 {
		return 0
	}
	return binom[n][k]
}

// combinadicRank computes the combinatorial-number-system rank of the
// positions (0-indexed, ascending) in a slice of length n where
// `member` reports true, given that exactly k of them are members.
// This is the classic way to rank a C(n,k) subset: scan from the
// high end, and every time a member is found at position i, add
// C(i, remaining) and decrement remaining.
func combinadicRank(n int, member func(i int) bool, k int) int {
	rank := 0
	remaining := k - 1
	for i := n - 1; i >= 0 && remaining >= 0; i-- {
		if member(i) {
			rank += Binomial(i, remaining+1)
			remaining--
		}
	}
	return rank
}
