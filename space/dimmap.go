package space

import "github.com/katalvlaran/relspace/ivec"

// DimMap is an opaque permutation/partial-function from destination column
// to source column, used to rewrite one constraint row under a change of
// layout (insert/move/project/reverse/product/apply-range, spec.md §4.2).
//
// pos[i] < 0 means "destination column i is zero"; otherwise pos[i] is the
// source column copied into destination column i. Entry 0 (the constant
// column) starts as zero like every other entry; callers route it with
// SetConst.
type DimMap struct {
	pos []int
}

// NewDimMap returns a DimMap of the given destination width with every
// entry initialized to "zero".
func NewDimMap(size int) *DimMap {
	m := &DimMap{pos: make([]int, size)}
	for i := range m.pos {
		m.pos[i] = -1
	}

	return m
}

// Len returns the destination width of m.
func (m *DimMap) Len() int {
	if m == nil {
		return 0
	}

	return len(m.pos)
}

// SetConst routes the constant column (destination 0) from source column
// srcCol (conventionally also 0).
func (m *DimMap) SetConst(srcCol int) *DimMap {
	return m.SetRange(0, srcCol, 1)
}

// SetRange routes n consecutive destination columns starting at dstOffset
// from n consecutive source columns starting at srcOffset, in order. This
// is the single primitive every layout-changing operation in basicrel
// builds dim-maps from (spec.md §9 "Dimension maps").
func (m *DimMap) SetRange(dstOffset, srcOffset, n int) *DimMap {
	for i := 0; i < n; i++ {
		if dstOffset+i < 0 || dstOffset+i >= len(m.pos) {
			continue
		}
		m.pos[dstOffset+i] = srcOffset + i
	}

	return m
}

// SetZero marks n consecutive destination columns starting at dstOffset as
// always-zero (used for freshly inserted dimensions and unknown divs).
func (m *DimMap) SetZero(dstOffset, n int) *DimMap {
	for i := 0; i < n; i++ {
		if dstOffset+i < 0 || dstOffset+i >= len(m.pos) {
			continue
		}
		m.pos[dstOffset+i] = -1
	}

	return m
}

// SetComponent routes n consecutive destination columns starting at
// dstBase from n consecutive source columns starting at srcBase, exactly
// as SetRange does; it names the common case of copying one whole
// component.
func (m *DimMap) SetComponent(dstBase int, srcBase int, n int) *DimMap {
	return m.SetRange(dstBase, srcBase, n)
}

// Apply rewrites src (a row of length >= the largest source column
// referenced) into a freshly allocated destination row of width m.Len(),
// per spec.md §4.2 "copy_constraint_dim_map".
func (m *DimMap) Apply(src ivec.Row) ivec.Row {
	out := ivec.NewRow(m.Len())
	for i, p := range m.pos {
		if p < 0 || p >= len(src) {
			continue
		}
		out[i].Set(src[p])
	}

	return out
}

// ApplyAll rewrites every row of rows through m, returning a new slice of
// rows (spec.md §4.2 "add_constraints_dim_map").
func (m *DimMap) ApplyAll(rows []ivec.Row) []ivec.Row {
	out := make([]ivec.Row, len(rows))
	for i, r := range rows {
		out[i] = m.Apply(r)
	}

	return out
}
