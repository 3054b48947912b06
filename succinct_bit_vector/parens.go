package succinct_bit_vector

import "math/bits"

// minIdentity/maxIdentity are neutral values for a node whose subtree
// covers no real superblock (the tree's shape is a truncated complete
// binary tree — see newRangeMinMaxTree). They never win a min/max
// comparison against a real excess value, since |excess| is bounded by
// size and size fits an int32.
const (
	minIdentity int32 = 1 << 30
	maxIdentity int32 = -(1 << 30)
)

// superBlockWords is the number of words grouped under one leaf of the
// range-min-max tree (spec.md §4.7).
const superBlockWords = largeBlockWords

// RangeMinMaxTree answers find-close, find-open and enclose on a binary
// string read as balanced parentheses (1 = open, 0 = close), in
// O(log n) time via a segment tree of per-superblock excess extrema
// layered over byte-level excess lookup tables and a RankDirectory
// (spec.md §4.7).
type RangeMinMaxTree struct {
	rank *RankDirectory

	minE []int8 // per-word minimum excess, relative to excess at (wordStart-1)
	maxE []int8 // per-word maximum excess, relative to excess at (wordStart-1)

	superCount int32
	leafBase   int32 // minT/maxT index of superblock 0
	internal   int32 // last internal node index (1..internal are internal)
	minT       []int32
	maxT       []int32
}

// NewRangeMinMaxTree builds a RangeMinMaxTree over vector's first size
// bits. The caller must not mutate vector afterward.
func NewRangeMinMaxTree(vector []uint32, size int32) (*RangeMinMaxTree, error) {
	rank, err := NewRankDirectory(vector, size)
	if err != nil {
		return nil, err
	}

	numWords := wordsFor(size)
	minE := make([]int8, numWords)
	maxE := make([]int8, numWords)

	for w := int32(0); w < numWords; w++ {
		word := vector[w]
		running := int32(0)
		wordMin, wordMax := int32(0), int32(0)
		for shift := uint(0); shift < 32; shift += 8 {
			b := byte(word >> shift)
			candMin := running + int32(minExcessLUT[b])
			candMax := running + int32(maxExcessLUT[b])
			if shift == 0 || candMin < wordMin {
				wordMin = candMin
			}
			if shift == 0 || candMax > wordMax {
				wordMax = candMax
			}
			running += 2*int32(bits.OnesCount8(b)) - 8
		}
		minE[w] = int8(wordMin)
		maxE[w] = int8(wordMax)
	}
	if numWords > 0 && minE[0] > 0 {
		minE[0] = 0
	}

	superCount := (numWords + superBlockWords - 1) / superBlockWords
	if superCount < 1 {
		superCount = 1
	}
	levels := ceilLog2(superCount)
	internal := (int32(1) << uint(levels)) - 1
	totalSize := internal + superCount + 1
	leafBase := totalSize - superCount

	minT := make([]int32, totalSize)
	maxT := make([]int32, totalSize)

	t := &RangeMinMaxTree{
		rank: rank, minE: minE, maxE: maxE,
		superCount: superCount, leafBase: leafBase, internal: internal,
		minT: minT, maxT: maxT,
	}

	for s := int32(0); s < superCount; s++ {
		first := s * superBlockWords
		last := first + superBlockWords - 1
		if last >= numWords {
			last = numWords - 1
		}
		mn, mx := int32(0), int32(0)
		for w := first; w <= last; w++ {
			base := t.wordBaseExcess(w)
			candMn := base + int32(minE[w])
			candMx := base + int32(maxE[w])
			if w == first || candMn < mn {
				mn = candMn
			}
			if w == first || candMx > mx {
				mx = candMx
			}
		}
		idx := leafBase + s
		minT[idx] = mn
		maxT[idx] = mx
	}

	for i := internal; i >= 1; i-- {
		left, right := 2*i, 2*i+1
		leftOK := left <= totalSize-1
		rightOK := right <= totalSize-1
		switch {
		case leftOK && rightOK:
			minT[i] = min(minT[left], minT[right])
			maxT[i] = max(maxT[left], maxT[right])
		case leftOK:
			minT[i] = minT[left]
			maxT[i] = maxT[left]
		default:
			minT[i] = minIdentity
			maxT[i] = maxIdentity
		}
	}

	return t, nil
}

// ceilLog2 returns ceil(log2(n)) for n >= 1.
func ceilLog2(n int32) int32 {
	if n <= 1 {
		return 0
	}
	return int32(bits.Len32(uint32(n - 1)))
}

// wordBaseExcess returns excess(wordStart-1) for word w, i.e. the
// running excess immediately before w's first bit; 0 for word 0.
func (t *RangeMinMaxTree) wordBaseExcess(w int32) int32 {
	if w == 0 {
		return 0
	}
	return t.rank.excessUnchecked(w*32 - 1)
}

// FindClose returns the position of the close matching the open
// parenthesis at open.
func (t *RangeMinMaxTree) FindClose(open int32) (int32, error) {
	if open < 0 || open >= t.rank.size {
		return 0, outOfRangef("open %d out of range [0, %d)", open, t.rank.size)
	}
	return t.searchForward(open, 0), nil
}

// FindOpen returns the position of the open matching the close
// parenthesis at close.
func (t *RangeMinMaxTree) FindOpen(closeAt int32) (int32, error) {
	if closeAt < 0 || closeAt >= t.rank.size {
		return 0, outOfRangef("close %d out of range [0, %d)", closeAt, t.rank.size)
	}
	return t.searchBackward(closeAt, 0), nil
}

// Enclose returns the position of the open parenthesis of the pair
// immediately enclosing open, or -1 if open is at the top level.
func (t *RangeMinMaxTree) Enclose(open int32) (int32, error) {
	if open < 0 || open >= t.rank.size {
		return 0, outOfRangef("open %d out of range [0, %d)", open, t.rank.size)
	}
	return t.searchBackward(open, 2), nil
}

// ByteSize returns the resident size of the tree's auxiliary storage,
// in bytes. It does not include the RankDirectory the tree builds
// internally; MemReport adds that separately.
func (t *RangeMinMaxTree) ByteSize() int {
	return len(t.minE) + len(t.maxE) + len(t.minT)*4 + len(t.maxT)*4
}

// searchForward finds the first position q > p with excess(q) ==
// excess(p-1) + delta (0 taken for excess(p-1) when p == 0), scanning
// the word containing p, then the rest of its superblock, then
// ascending the tree. Returns -1 if no such position exists.
func (t *RangeMinMaxTree) searchForward(p, delta int32) int32 {
	base := int32(0)
	if p > 0 {
		base = t.rank.excessUnchecked(p - 1)
	}
	target := base + delta

	numWords := int32(len(t.minE))
	wordIdx := p / 32

	if p%32 < 31 && p+1 < t.rank.size {
		exAtP1 := t.rank.excessUnchecked(p + 1)
		bit, _ := forwardExcessIndex(t.rank.vector[wordIdx], p%32+1, exAtP1, target)
		switch classifyForward(bit) {
		case scanFound:
			return wordIdx*32 + bit
		case scanNotFound:
			// fall through to the rest of the superblock.
		}
	}

	superIdx := wordIdx / superBlockWords
	lastWordInSuper := superIdx*superBlockWords + superBlockWords - 1
	if lastWordInSuper >= numWords {
		lastWordInSuper = numWords - 1
	}
	for w := wordIdx + 1; w <= lastWordInSuper; w++ {
		base := t.wordBaseExcess(w)
		if target >= base+int32(t.minE[w]) && target <= base+int32(t.maxE[w]) {
			bit, _ := forwardExcessIndex(t.rank.vector[w], 0, t.rank.excessUnchecked(w*32), target)
			if classifyForward(bit) == scanFound {
				return w*32 + bit
			}
		}
	}

	if t.superCount <= 1 {
		return -1
	}
	node := t.leafBase + superIdx
	for node != 1 {
		parent := node / 2
		if node == 2*parent {
			right := node + 1
			if right <= int32(len(t.minT))-1 && target >= t.minT[right] && target <= t.maxT[right] {
				if q := t.descendForward(right, target); q >= 0 {
					return q
				}
			}
		}
		node = parent
	}
	return -1
}

// descendForward walks down from node (known to contain target in its
// excess range) toward the leftmost qualifying leaf, then scans that
// leaf's superblock forward from its first word.
func (t *RangeMinMaxTree) descendForward(node, target int32) int32 {
	for node <= t.internal {
		left, right := 2*node, 2*node+1
		if left <= int32(len(t.minT))-1 && target >= t.minT[left] && target <= t.maxT[left] {
			node = left
			continue
		}
		node = right
	}

	s := node - t.leafBase
	numWords := int32(len(t.minE))
	first := s * superBlockWords
	last := first + superBlockWords - 1
	if last >= numWords {
		last = numWords - 1
	}
	for w := first; w <= last; w++ {
		base := t.wordBaseExcess(w)
		if target >= base+int32(t.minE[w]) && target <= base+int32(t.maxE[w]) {
			bit, _ := forwardExcessIndex(t.rank.vector[w], 0, t.rank.excessUnchecked(w*32), target)
			if classifyForward(bit) == scanFound {
				return w*32 + bit
			}
		}
	}
	return -1
}

// searchBackward finds the last position q < p with excess(q) ==
// excess(p) - delta (q may be -1, the virtual position before bit 0,
// whose excess is 0), scanning the word containing p, then the rest of
// its superblock, then ascending the tree, and returns q+1. Returns -1
// if no such position exists (including when the target excess is
// negative).
func (t *RangeMinMaxTree) searchBackward(p, delta int32) int32 {
	target := t.rank.excessUnchecked(p) - delta
	if target < 0 {
		return -1
	}

	wordIdx := p / 32

	if p%32 > 0 {
		exAtPm1 := t.rank.excessUnchecked(p - 1)
		res, _ := backwardExcessIndex(t.rank.vector[wordIdx], p%32-1, exAtPm1, target)
		switch classifyBackward(res) {
		case scanFound, scanBoundary:
			return wordIdx*32 + res + 1
		case scanNotFound:
			// fall through to the rest of the superblock.
		}
	}

	superIdx := wordIdx / superBlockWords
	firstWordInSuper := superIdx * superBlockWords
	for w := wordIdx - 1; w >= firstWordInSuper; w-- {
		base := t.wordBaseExcess(w)
		if target >= base+int32(t.minE[w]) && target <= base+int32(t.maxE[w]) {
			wordEnd := (w + 1) * 32
			res, _ := backwardExcessIndex(t.rank.vector[w], 31, t.rank.excessUnchecked(wordEnd-1), target)
			switch classifyBackward(res) {
			case scanFound, scanBoundary:
				return w*32 + res + 1
			}
		}
	}

	if t.superCount <= 1 {
		return -1
	}
	node := t.leafBase + superIdx
	for node != 1 {
		parent := node / 2
		if node == 2*parent+1 {
			left := node - 1
			if left >= 1 && target >= t.minT[left] && target <= t.maxT[left] {
				if q := t.descendBackward(left, target); q >= 0 {
					return q
				}
			}
		}
		node = parent
	}
	return -1
}

// descendBackward walks down from node (known to contain target in its
// excess range) toward the rightmost qualifying leaf, then scans that
// leaf's superblock backward from its last word.
func (t *RangeMinMaxTree) descendBackward(node, target int32) int32 {
	for node <= t.internal {
		left, right := 2*node, 2*node+1
		if right <= int32(len(t.minT))-1 && target >= t.minT[right] && target <= t.maxT[right] {
			node = right
			continue
		}
		node = left
	}

	s := node - t.leafBase
	numWords := int32(len(t.minE))
	first := s * superBlockWords
	last := first + superBlockWords - 1
	if last >= numWords {
		last = numWords - 1
	}
	for w := last; w >= first; w-- {
		base := t.wordBaseExcess(w)
		if target >= base+int32(t.minE[w]) && target <= base+int32(t.maxE[w]) {
			wordEnd := (w + 1) * 32
			res, _ := backwardExcessIndex(t.rank.vector[w], 31, t.rank.excessUnchecked(wordEnd-1), target)
			switch classifyBackward(res) {
			case scanFound, scanBoundary:
				return w*32 + res + 1
			}
		}
	}
	return -1
}
