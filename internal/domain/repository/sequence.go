package repository

// sequence hands out monotonically increasing ids. Callers hold the owning
// repository's lock.
type sequence struct {
	last int
}

func (s *sequence) next() int {
	s.last++
	return s.last
}

// claim assigns the next id when id is zero, otherwise records a preset id
// (seed data) so later ids never collide with it.
func (s *sequence) claim(id int) int {
	if id == 0 {
		return s.next()
	}
	if id > s.last {
		s.last = id
	}
	return id
}
