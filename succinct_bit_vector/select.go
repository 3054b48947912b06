package succinct_bit_vector

import "math/bits"

// selectSamplePeriod is P in spec.md §4.4: one sample entry per 256 ones.
const selectSamplePeriod = 256

// SelectIndex answers select1(i) — the position of the (i+1)-th 1-bit —
// in near-constant time, by sampling one entry per selectSamplePeriod ones
// over a RankDirectory and then scanning a bounded local neighborhood
// (spec.md §4.4).
type SelectIndex struct {
	rank  *RankDirectory
	table []int32 // T: table[s] = (small-block index containing the (s*P+1)-th one) - 1
}

// NewSelectIndex builds a SelectIndex layered on rank.
func NewSelectIndex(rank *RankDirectory) *SelectIndex {
	numWords := int32(len(rank.small))
	total := rank.total

	numSamples := (total+selectSamplePeriod-1)/selectSamplePeriod + 1
	if numSamples < 1 {
		numSamples = 1
	}

	table := make([]int32, 0, numSamples)
	cum := int32(0)
	nextSample := int32(0)

	for wordIdx := int32(0); wordIdx < numWords && int32(len(table)) < numSamples; wordIdx++ {
		onesInBlock := rank.blockOnes(wordIdx)
		threshold := nextSample*selectSamplePeriod + 1
		for threshold <= cum+onesInBlock && int32(len(table)) < numSamples {
			table = append(table, wordIdx-1)
			nextSample++
			threshold = nextSample*selectSamplePeriod + 1
		}
		cum += onesInBlock
	}

	lastBlock := numWords - 1
	for int32(len(table)) < numSamples {
		table = append(table, lastBlock)
	}

	return &SelectIndex{rank: rank, table: table}
}

// Select returns the position of the (i+1)-th 1-bit, or -1 if i is at
// least the total number of 1-bits.
func (s *SelectIndex) Select(i int32) (int32, error) {
	if i < 0 || i >= s.rank.size {
		return 0, outOfRangef("select index %d out of range [0, %d)", i, s.rank.size)
	}
	if i >= s.rank.total {
		return -1, nil
	}

	r := i + 1

	sampleIdx := (r - 1) / selectSamplePeriod
	if sampleIdx >= int32(len(s.table)) {
		sampleIdx = int32(len(s.table)) - 1
	}
	lb := s.table[sampleIdx] / largeBlockWords

	for lb+1 < int32(len(s.rank.large)) && r > s.rank.large[lb+1] {
		lb++
	}
	r -= s.rank.large[lb]

	boundary := lb*largeBlockWords + largeBlockWords
	numWords := int32(len(s.rank.small))
	if boundary > numWords {
		boundary = numWords
	}

	ss := lb*largeBlockWords + (r-1)/smallBlockBits + 1
	for ss < boundary && int32(s.rank.small[ss]) < r {
		ss++
	}
	ss--
	if ss < 0 {
		ss = 0
	}
	r -= int32(s.rank.small[ss])

	word := s.rank.vector[ss]
	for k := int32(0); k < r-1; k++ {
		word = (word - 1) & word
	}

	return ss*smallBlockBits + int32(bits.TrailingZeros32(word)), nil
}

// ByteSize returns the resident size of the sample table, in bytes.
func (s *SelectIndex) ByteSize() int {
	return len(s.table) * 4
}
