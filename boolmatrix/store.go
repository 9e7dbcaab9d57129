package boolmatrix

import (
	"fmt"
	"sort"
)

// Store is a mapping from edge label to a square boolean matrix, all
// sharing one dimension N. Resize grows every matrix consistently and
// Matrix allocates a new label at the current N, so no two label matrices ever
// drift apart — a drift would surface as ErrInconsistentStore.
type Store struct {
	n    int
	byLb map[string]*BoolMatrix
}

// NewStore allocates an empty store of dimension n with no labels.
func NewStore(n int) (*Store, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewStore: n=%d: %w", n, ErrOutOfRange)
	}
	return &Store{n: n, byLb: make(map[string]*BoolMatrix)}, nil
}

// Size returns the store's shared dimension N.
func (s *Store) Size() int {
	if s == nil {
		return 0
	}
	return s.n
}

// Labels returns the store's labels in sorted order, for deterministic
// iteration across callers.
func (s *Store) Labels() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.byLb))
	for lb := range s.byLb {
		out = append(out, lb)
	}
	sort.Strings(out)
	return out
}

// Matrix returns the matrix for label lb, allocating an all-false matrix of
// the store's current dimension on first reference.
func (s *Store) Matrix(lb string) (*BoolMatrix, error) {
	if s == nil {
		return nil, ErrNilMatrix
	}
	m, ok := s.byLb[lb]
	if ok {
		if err := ValidateSquare(m, s.n); err != nil {
			return nil, fmt.Errorf("Matrix(%q): %w", lb, err)
		}
		return m, nil
	}
	m, err := NewBoolMatrix(s.n)
	if err != nil {
		return nil, fmt.Errorf("Matrix(%q): %w", lb, err)
	}
	s.byLb[lb] = m
	return m, nil
}

// HasLabel reports whether lb has an (allocated, possibly empty) matrix.
func (s *Store) HasLabel(lb string) bool {
	if s == nil {
		return false
	}
	_, ok := s.byLb[lb]
	return ok
}

// Set writes a single cell in the matrix for label lb, allocating the
// label's matrix if this is its first edge.
func (s *Store) Set(lb string, i, j int, v bool) error {
	m, err := s.Matrix(lb)
	if err != nil {
		return fmt.Errorf("Store.Set(%q): %w", lb, err)
	}
	if err := m.Set(i, j, v); err != nil {
		return fmt.Errorf("Store.Set(%q): %w", lb, err)
	}
	return nil
}

// Get reads a single cell in the matrix for label lb. A label with no
// matrix yet reads as false everywhere.
func (s *Store) Get(lb string, i, j int) (bool, error) {
	if s == nil {
		return false, ErrNilMatrix
	}
	m, ok := s.byLb[lb]
	if !ok {
		if i < 0 || i >= s.n || j < 0 || j >= s.n {
			return false, fmt.Errorf("Store.Get(%q): (%d,%d) outside [0,%d): %w", lb, i, j, s.n, ErrOutOfRange)
		}
		return false, nil
	}
	v, err := m.Get(i, j)
	if err != nil {
		return false, fmt.Errorf("Store.Get(%q): %w", lb, err)
	}
	return v, nil
}

// Resize grows every matrix in the store to n×n, never shrinking, keeping
// all label matrices at a consistent shared dimension.
func (s *Store) Resize(n int) error {
	if s == nil {
		return ErrNilMatrix
	}
	if n < s.n {
		return fmt.Errorf("Store.Resize: %w", ErrShrink)
	}
	for lb, m := range s.byLb {
		if err := m.Resize(n); err != nil {
			return fmt.Errorf("Store.Resize(%q): %w", lb, err)
		}
	}
	s.n = n
	return nil
}

// Union returns the elementwise OR of every per-label matrix in the store —
// the unlabeled-reachability matrix A of spec §4.5.
func (s *Store) Union() (*BoolMatrix, error) {
	if s == nil {
		return nil, ErrNilMatrix
	}
	out, err := NewBoolMatrix(s.n)
	if err != nil {
		return nil, fmt.Errorf("Store.Union: %w", err)
	}
	for _, lb := range s.Labels() {
		if err := out.UnionInplace(s.byLb[lb]); err != nil {
			return nil, fmt.Errorf("Store.Union(%q): %w", lb, err)
		}
	}
	return out, nil
}

// Clone returns a deep, independent copy of the store (and every label
// matrix in it) — required by spec §5 before a store can be reused across
// concurrently running queries.
func (s *Store) Clone() *Store {
	if s == nil {
		return nil
	}
	out := &Store{n: s.n, byLb: make(map[string]*BoolMatrix, len(s.byLb))}
	for lb, m := range s.byLb {
		out.byLb[lb] = m.Clone()
	}
	return out
}
