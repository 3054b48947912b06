package succinct_bit_vector

// largeBlockWords is the number of 32-bit words in a large rank block
// (256 bits); smallBlockBits is the size of a small block (one word).
const (
	largeBlockWords = 8
	smallBlockBits  = 32
)

// RankDirectory is a two-level (Jacobson-style) rank directory over an
// immutable word array (spec.md §3/§4.3): a large directory L sampled
// every 256 bits, and a small directory S sampled every 32 bits within
// the owning large block, each holding a cumulative count so rank(i) is
// L[i/256] + S[i/32] + a single-word popcount.
//
// The word array is stored by reference (spec.md §5) — callers must treat
// it as frozen once handed to NewRankDirectory.
type RankDirectory struct {
	vector []uint32
	size   int32

	large []int32 // L: rank1 up to (not including) large block k
	small []byte  // S: rank1 within owning large block up to (not including) small block j

	total int32
}

// NewRankDirectory builds a rank directory over vector's first
// ceil(size/32) words. size must be positive and fit within vector.
func NewRankDirectory(vector []uint32, size int32) (*RankDirectory, error) {
	if size <= 0 {
		return nil, badArgumentf("rank directory size %d must be positive", size)
	}
	if int64(size) > int64(32)*int64(len(vector)) {
		return nil, badArgumentf("rank directory size %d exceeds vector capacity %d bits", size, 32*len(vector))
	}

	numWords := wordsFor(size)
	numLarge := (numWords + largeBlockWords - 1) / largeBlockWords

	large := make([]int32, numLarge+1)
	small := make([]byte, numWords)

	cum := int32(0)
	lastWordMask := maskLow(int(size % 32))
	if size%32 == 0 {
		lastWordMask = ^uint32(0)
	}

	for k := int32(0); k < numLarge; k++ {
		large[k] = cum
		localCum := int32(0)

		for w := int32(0); w < largeBlockWords; w++ {
			wordIdx := k*largeBlockWords + w
			if wordIdx >= numWords {
				break
			}
			small[wordIdx] = byte(localCum)

			word := vector[wordIdx]
			if wordIdx == numWords-1 {
				word &= lastWordMask
			}
			pc := popcountWord(word)
			localCum += pc
			cum += pc
		}
	}
	large[numLarge] = cum

	return &RankDirectory{
		vector: vector,
		size:   size,
		large:  large,
		small:  small,
		total:  cum,
	}, nil
}

// maskLow returns a mask with the low k bits set (0 <= k <= 32).
func maskLow(k int) uint32 {
	if k <= 0 {
		return 0
	}
	if k >= 32 {
		return ^uint32(0)
	}
	return (uint32(1) << uint(k)) - 1
}

// Size returns the number of bits the directory was built over.
func (r *RankDirectory) Size() int32 {
	return r.size
}

// Rank returns rank1(i): the number of 1-bits in b0..bi inclusive.
func (r *RankDirectory) Rank(i int32) (int32, error) {
	if i < 0 || i >= r.size {
		return 0, outOfRangef("rank index %d out of range [0, %d)", i, r.size)
	}
	return r.rankUnchecked(i), nil
}

func (r *RankDirectory) rankUnchecked(i int32) int32 {
	largeIdx := i / (largeBlockWords * smallBlockBits)
	smallIdx := i / smallBlockBits
	inWord := r.vector[smallIdx] & maskLow(int(i%smallBlockBits)+1)
	return r.large[largeIdx] + int32(r.small[smallIdx]) + popcountWord(inWord)
}

// Total returns rank1(size-1), the total number of 1-bits.
func (r *RankDirectory) Total() int32 {
	return r.total
}

// Rank0 returns rank0(i) = i+1 - rank1(i).
func (r *RankDirectory) Rank0(i int32) (int32, error) {
	rk, err := r.Rank(i)
	if err != nil {
		return 0, err
	}
	return i + 1 - rk, nil
}

// Excess returns excess(i) = rank1(i) - rank0(i) = 2*rank1(i) - i - 1.
func (r *RankDirectory) Excess(i int32) (int32, error) {
	rk, err := r.Rank(i)
	if err != nil {
		return 0, err
	}
	return 2*rk - i - 1, nil
}

// excessUnchecked is Excess without bounds checking, used internally by
// RangeMinMaxTree where i has already been validated (or is the -1
// virtual-excess-before-position-0 sentinel, defined as 0).
func (r *RankDirectory) excessUnchecked(i int32) int32 {
	if i < 0 {
		return 0
	}
	return 2*r.rankUnchecked(i) - i - 1
}

// blockOnes returns the number of 1-bits in small block (word) wordIdx,
// honoring the size-imposed mask on the final word.
func (r *RankDirectory) blockOnes(wordIdx int32) int32 {
	word := r.vector[wordIdx]
	numWords := int32(len(r.small))
	if wordIdx == numWords-1 && r.size%32 != 0 {
		word &= maskLow(int(r.size % 32))
	}
	return popcountWord(word)
}

// Count returns the number of 1-bits in [start, start+length), the
// windowed-popcount sugar SPEC_FULL.md §12 adds over the required Rank/Rank0
// surface.
func (r *RankDirectory) Count(start, length int32) (int32, error) {
	if start < 0 || length < 0 || start+length > r.size {
		return 0, outOfRangef("count window [%d, %d) out of range [0, %d)", start, start+length, r.size)
	}
	if length == 0 {
		return 0, nil
	}
	end := r.rankUnchecked(start + length - 1)
	if start == 0 {
		return end, nil
	}
	return end - r.rankUnchecked(start-1), nil
}

// ByteSize returns the resident size of the directory's auxiliary arrays,
// in bytes (it excludes the shared vector, which the directory does not
// own).
func (r *RankDirectory) ByteSize() int {
	return len(r.large)*4 + len(r.small)
}

// BitSetView returns a read-only BitSet projection of the directory's
// underlying bits: Get reads through to the word array, Size reports the
// directory's size, and Set always fails with ErrUnsupported, matching
// spec.md §4.7's "Unsupported operations on read-only views" rule.
func (r *RankDirectory) BitSetView() *rankDirectoryBitSet {
	return &rankDirectoryBitSet{r: r}
}

type rankDirectoryBitSet struct {
	r *RankDirectory
}

func (v *rankDirectoryBitSet) Get(i int32) (bool, error) {
	if i < 0 || i >= v.r.size {
		return false, outOfRangef("bit index %d out of range [0, %d)", i, v.r.size)
	}
	return v.r.vector[i/32]&(uint32(1)<<uint(i%32)) != 0, nil
}

func (v *rankDirectoryBitSet) Set(i int32, val bool) error {
	return unsupportedf("RankDirectory's BitSet view is read-only")
}

func (v *rankDirectoryBitSet) Size() int32 {
	return v.r.size
}
