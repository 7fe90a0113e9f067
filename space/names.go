package space

// globalIndex maps (component, local index) to a position in the flat
// [param | in | out] names slice.
func (s *Space) globalIndex(c Component, i int) int {
	switch c {
	case Param:
		return i
	case In:
		return s.nparam + i
	case Out:
		return s.nparam + s.nIn + i
	default:
		return -1
	}
}

// SetName returns a new Space (names are copy-on-write) with dimension i
// of component c named. Safe to call repeatedly; the receiver is never
// mutated.
func (s *Space) SetName(c Component, i int, name string) (*Space, error) {
	if s == nil {
		return nil, ErrNilSpace
	}
	if i < 0 || i >= s.Size(c) {
		return nil, ErrIndexOutOfRange
	}

	out := s.Dup()
	if out.names == nil {
		out.names = make([]string, out.total())
	}
	out.names[out.globalIndex(c, i)] = name

	return out, nil
}

// GetName returns the name of dimension i of component c, or "" if unset.
func (s *Space) GetName(c Component, i int) string {
	if s == nil || s.names == nil {
		return ""
	}
	idx := s.globalIndex(c, i)
	if idx < 0 || idx >= len(s.names) {
		return ""
	}

	return s.names[idx]
}

func reverseNames(s *Space) []string {
	if s.names == nil {
		return nil
	}
	out := make([]string, len(s.names))
	copy(out[:s.nparam], s.names[:s.nparam])
	copy(out[s.nparam:s.nparam+s.nOut], s.names[s.nparam+s.nIn:])
	copy(out[s.nparam+s.nOut:], s.names[s.nparam:s.nparam+s.nIn])

	return out
}

func insertNames(s *Space, c Component, pos, n int) []string {
	if s.names == nil {
		return nil
	}
	base := s.globalIndex(c, 0)
	cut := base + pos
	out := make([]string, 0, len(s.names)+n)
	out = append(out, s.names[:cut]...)
	out = append(out, make([]string, n)...)
	out = append(out, s.names[cut:]...)

	return out
}

func dropNames(s *Space, c Component, pos, n int) []string {
	if s.names == nil {
		return nil
	}
	base := s.globalIndex(c, 0)
	from, to := base+pos, base+pos+n
	out := make([]string, 0, len(s.names)-n)
	out = append(out, s.names[:from]...)
	out = append(out, s.names[to:]...)

	return out
}
