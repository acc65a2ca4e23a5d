// SPDX-License-Identifier: MIT

package ddm

// zeroSet records which inserted constraints vanish on a generator.
type zeroSet []uint64

func newZeroSet(words int) zeroSet { return make(zeroSet, words) }

// prefix returns the set {0, ..., k-1}.
func prefix(k, words int) zeroSet {
	s := newZeroSet(words)
	for i := 0; i < k; i++ {
		s[i>>6] |= 1 << (uint(i) & 63)
	}

	return s
}

// with returns a copy of s with bit i set.
func (s zeroSet) with(i int) zeroSet {
	out := make(zeroSet, len(s))
	copy(out, s)
	out[i>>6] |= 1 << (uint(i) & 63)

	return out
}

func (s zeroSet) and(o zeroSet) zeroSet {
	out := make(zeroSet, len(s))
	for i := range s {
		out[i] = s[i] & o[i]
	}

	return out
}

func (s zeroSet) subsetOf(o zeroSet) bool {
	for i := range s {
		if s[i]&^o[i] != 0 {
			return false
		}
	}

	return true
}
