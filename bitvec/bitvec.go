package bitvec

import "math/bits"

type Bitvec struct {
	Words []uint64
	Count int
}

func New(size int) *Bitvec {
	numWords := (size + 63) / 64
	return &Bitvec{Words: make([]uint64, numWords)}
}

func (bv *Bitvec) Set(index int) {
	wordIndex := index / 64
	bitIndex := index % 64
	if (bv.Words[wordIndex] & (1 << bitIndex)) == 0 {
		bv.Words[wordIndex] |= 1 << bitIndex
		bv.Count++
	}
}

func (bv *Bitvec) Clear(index int) {
	wordIndex := index / 64
	bitIndex := index % 64
	if (bv.Words[wordIndex] & (1 << bitIndex)) != 0 {
		bv.Words[wordIndex] &^= 1 << bitIndex
		bv.Count--
	}
}

func (bv *Bitvec) Get(index int) bool {
	wordIndex := index / 64
	bitIndex := index % 64
	return (bv.Words[wordIndex] & (1 << bitIndex)) != 0
}

func (bv *Bitvec) And(other *Bitvec) *Bitvec {
	minLen := min(len(other.Words), len(bv.Words))

	result := &Bitvec{Words: make([]uint64, minLen)}
	for i := range minLen {
		result.Words[i] = bv.Words[i] & other.Words[i]
		result.Count += bits.OnesCount64(result.Words[i])
	}
	return result
}

// Indexes returns the set bit positions in ascending order.
func (bv *Bitvec) Indexes() []int {
	out := make([]int, 0, bv.Count)
	for i, w := range bv.Words {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			out = append(out, i*64+b)
			w &^= 1 << b
		}
	}
	return out
}
