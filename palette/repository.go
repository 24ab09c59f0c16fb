package palette

import "fmt"

// Repository is an append-only, ordered collection of schemes.
type Repository struct {
	schemes []Scheme
}

func NewRepository() *Repository {
	return &Repository{}
}

// Load converts every row and appends the resulting schemes in input order.
// If any color is malformed nothing is appended.
func (r *Repository) Load(raw [][]string) error {
	converted := make([]Scheme, 0, len(raw))
	for i, row := range raw {
		scheme := make(Scheme, 0, len(row))
		for _, hex := range row {
			c, err := HexToHSL(hex)
			if err != nil {
				return fmt.Errorf("scheme %d: %w", i, err)
			}
			scheme = append(scheme, c)
		}
		converted = append(converted, scheme)
	}

	r.schemes = append(r.schemes, converted...)
	return nil
}

// Schemes returns every loaded scheme in load order.
func (r *Repository) Schemes() []Scheme {
	out := make([]Scheme, len(r.schemes))
	copy(out, r.schemes)
	return out
}

func (r *Repository) Len() int {
	return len(r.schemes)
}

// Match returns, in load order, the schemes holding at least one color within
// tolerance of base.
func (r *Repository) Match(base Color, tolerance int) []Scheme {
	matches := []Scheme{}
	for _, scheme := range r.schemes {
		if scheme.Contains(base, tolerance) {
			matches = append(matches, scheme)
		}
	}
	return matches
}

// Contains reports whether any color of s is within tolerance of base.
func (s Scheme) Contains(base Color, tolerance int) bool {
	for _, c := range s {
		if Distance(base, c) <= tolerance {
			return true
		}
	}
	return false
}

// Hexes returns the source strings of the scheme's colors.
func (s Scheme) Hexes() []string {
	out := make([]string, len(s))
	for i, c := range s {
		out[i] = c.SourceHex
	}
	return out
}
