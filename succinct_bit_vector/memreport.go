package succinct_bit_vector

import "succinct/utils"

// MemReport returns a leaf utils.MemReport node for this directory,
// sized by ByteSize(), the same composition style
// rloc.RangeLocator.ByteSize() uses for its own constituents.
func (r *RankDirectory) MemReport() utils.MemReport {
	return utils.MemReport{Name: "RankDirectory", TotalBytes: r.ByteSize()}
}

// MemReport returns a leaf utils.MemReport node for this index.
func (s *SelectIndex) MemReport() utils.MemReport {
	return utils.MemReport{Name: "SelectIndex", TotalBytes: s.ByteSize()}
}

// MemReport returns a leaf utils.MemReport node for this array.
func (a *CompactIntArray) MemReport() utils.MemReport {
	return utils.MemReport{Name: "CompactIntArray", TotalBytes: a.ByteSize()}
}

// MemReport returns a utils.MemReport for the tree, broken down into
// its rank directory and its own excess tables, since those are the
// two distinct allocations; ByteSize() counts only the latter.
func (t *RangeMinMaxTree) MemReport() utils.MemReport {
	ownBytes := t.ByteSize()
	return utils.MemReport{
		Name:       "RangeMinMaxTree",
		TotalBytes: ownBytes + t.rank.ByteSize(),
		Children: []utils.MemReport{
			t.rank.MemReport(),
			{Name: "excessTables", TotalBytes: ownBytes},
		},
	}
}

// Sized is satisfied by every component with a MemReport, letting
// callers compose a named collection into a single report with
// BuildMemReport.
type Sized interface {
	MemReport() utils.MemReport
}

// BuildMemReport composes a named collection of sized components into
// one utils.MemReport tree, summing their bytes into the root.
func BuildMemReport(name string, components []Sized) utils.MemReport {
	children := utils.Map(components, func(s Sized) utils.MemReport { return s.MemReport() })
	total := 0
	for _, c := range children {
		total += c.TotalBytes
	}
	return utils.MemReport{Name: name, TotalBytes: total, Children: children}
}
