package rg

// TokenSet is a fixed-width bitset over the kind space, for O(1)
// membership tests during parser lookahead and recovery.
type TokenSet[K Kind] struct {
	bits [KindWidth / 64]uint64
}

func NewTokenSet[K Kind](kinds ...K) TokenSet[K] {
	var s TokenSet[K]
	for _, k := range kinds {
		d := uint(k)
		s.bits[d/64] |= 1 << (d % 64)
	}
	return s
}

func (s TokenSet[K]) Contains(k K) bool {
	d := uint(k)
	return s.bits[d/64]&(1<<(d%64)) != 0
}

func (s TokenSet[K]) Union(o TokenSet[K]) TokenSet[K] {
	var u TokenSet[K]
	for i := range s.bits {
		u.bits[i] = s.bits[i] | o.bits[i]
	}
	return u
}
