package succinct_bit_vector

import (
	"encoding/binary"
	"math"
	"math/bits"

	"github.com/zeebo/xxh3"
)

// maxBitIndex is the reserved index (2^31 - 1) that Set always rejects,
// and the implicit ceiling a dynamic container's size saturates at.
const maxBitIndex int32 = math.MaxInt32

// maxWordIndex is one past the largest legal word index (2^31 / 32).
const maxWordIndex int32 = (1 << 31) / 32

const initialWordCount = 8

type containerMode int

const (
	dynamicContainer containerMode = iota
	fixedContainer
)

// BitContainer is a mutable, word-packed bit set (spec.md C1). Bit j lives
// in word j/32 at position j%32, little-endian within the word, matching
// the layout RankDirectory and RangeMinMaxTree assume once a container's
// words are handed to them.
//
// A dynamic container starts at 8 words and grows (doubling, or growing to
// exactly cover the requested index when that is larger) whenever Set
// reaches beyond the current size; a fixed container never grows and
// rejects out-of-range writes instead.
type BitContainer struct {
	words []uint32
	size  int32
	mode  containerMode
}

// NewDynamicBitContainer returns an empty, growable container.
func NewDynamicBitContainer() *BitContainer {
	return &BitContainer{
		words: make([]uint32, initialWordCount),
		size:  initialWordCount * 32,
		mode:  dynamicContainer,
	}
}

// NewFixedBitContainer returns a container with exactly size bits, never
// growing past it.
func NewFixedBitContainer(size int32) (*BitContainer, error) {
	if size < 0 {
		return nil, badArgumentf("fixed bit container size %d is negative", size)
	}
	return &BitContainer{
		words: make([]uint32, wordsFor(size)),
		size:  size,
		mode:  fixedContainer,
	}, nil
}

func wordsFor(sizeBits int32) int32 {
	return (sizeBits + 31) / 32
}

// Size returns the container's current size in bits.
func (c *BitContainer) Size() int32 {
	return c.size
}

// Get reads bit i.
func (c *BitContainer) Get(i int32) (bool, error) {
	if i < 0 || i >= c.size {
		return false, outOfRangef("bit index %d out of range [0, %d)", i, c.size)
	}
	word := c.words[i/32]
	return word&(uint32(1)<<uint(i%32)) != 0, nil
}

// Set writes bit i to v. In dynamic mode the container grows to cover i if
// needed; in fixed mode an out-of-range i fails instead.
func (c *BitContainer) Set(i int32, v bool) error {
	if i < 0 || i == maxBitIndex {
		return outOfRangef("bit index %d out of range", i)
	}
	if i >= c.size {
		if c.mode == fixedContainer {
			return outOfRangef("bit index %d out of range [0, %d)", i, c.size)
		}
		c.ensureCapacity(i)
	}
	wordIdx := i / 32
	mask := uint32(1) << uint(i%32)
	if v {
		c.words[wordIdx] |= mask
	} else {
		c.words[wordIdx] &^= mask
	}
	return nil
}

// SetBit is shorthand for Set(i, true).
func (c *BitContainer) SetBit(i int32) error {
	return c.Set(i, true)
}

// SetWord overwrites word k (bits [32k, 32k+32)) with v.
func (c *BitContainer) SetWord(k int32, v uint32) error {
	if k < 0 || k >= maxWordIndex {
		return outOfRangef("word index %d out of range", k)
	}
	if k >= int32(len(c.words)) {
		if c.mode == fixedContainer {
			return outOfRangef("word index %d out of range [0, %d)", k, len(c.words))
		}
		c.ensureCapacity(k*32 + 31)
	}
	c.words[k] = v
	return nil
}

// Words returns the underlying word array directly, with no copy — callers
// that hand this slice to RankDirectory/RangeMinMaxTree must not mutate it
// afterward, matching spec.md §5's shared-ownership contract.
func (c *BitContainer) Words() []uint32 {
	return c.words
}

// ToWords returns a copy of the container's words, truncated or
// zero-padded to newSize bits, with any bits at or beyond newSize in the
// last word cleared.
func (c *BitContainer) ToWords(newSize int32) ([]uint32, error) {
	if newSize < 0 {
		return nil, badArgumentf("ToWords size %d is negative", newSize)
	}
	n := wordsFor(newSize)
	out := make([]uint32, n)
	copy(out, c.words)
	if newSize%32 != 0 && n > 0 {
		mask := uint32(1)<<uint(newSize%32) - 1
		out[n-1] &= mask
	}
	return out, nil
}

// ensureCapacity grows the container so bit i is addressable, doubling the
// word array or growing to exactly cover i, whichever is larger, and
// saturating size at 2^31-1.
func (c *BitContainer) ensureCapacity(i int32) {
	needWords := wordsFor(i + 1)
	grownWords := int32(len(c.words)) * 2
	if grownWords < needWords {
		grownWords = needWords
	}

	newWords := make([]uint32, grownWords)
	copy(newWords, c.words)
	c.words = newWords

	newSize := int64(grownWords) * 32
	if newSize > int64(maxBitIndex) {
		newSize = int64(maxBitIndex)
	}
	c.size = int32(newSize)
}

// Checksum returns a content fingerprint over the container's size and
// words, for diagnostics — it carries no semantic meaning beyond
// equality comparison.
func (c *BitContainer) Checksum() uint64 {
	h := xxh3.New()
	var sizeBuf [4]byte
	binary.LittleEndian.PutUint32(sizeBuf[:], uint32(c.size))
	h.Write(sizeBuf[:])

	n := wordsFor(c.size)
	var buf [4]byte
	for idx := int32(0); idx < n && idx < int32(len(c.words)); idx++ {
		binary.LittleEndian.PutUint32(buf[:], c.words[idx])
		h.Write(buf[:])
	}
	return h.Sum64()
}

// popcountWord is the single place BitContainer-adjacent code counts bits
// in a word; kept as a thin wrapper so callers read "popcount", not a
// stdlib package-qualified call, at use sites.
func popcountWord(w uint32) int32 {
	return int32(bits.OnesCount32(w))
}
