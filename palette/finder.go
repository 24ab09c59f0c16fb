package palette

// ReferenceState is the color and tolerance schemes are matched against.
type ReferenceState struct {
	BaseColor Color `json:"baseColor"`
	Tolerance int   `json:"tolerance"`
}

func DefaultReferenceState() ReferenceState {
	return ReferenceState{
		BaseColor: MustHexToHSL(DefaultBaseHex),
		Tolerance: DefaultTolerance,
	}
}

// Finder filters a Repository against a mutable ReferenceState.
// A Finder is not safe for concurrent use; several Finders may share one
// Repository as long as the caller serializes Load against queries.
type Finder struct {
	repo  *Repository
	state ReferenceState
}

// NewFinder returns a Finder over repo with the default reference state.
// A nil repo gets a fresh, empty Repository.
func NewFinder(repo *Repository) *Finder {
	if repo == nil {
		repo = NewRepository()
	}
	return &Finder{
		repo:  repo,
		state: DefaultReferenceState(),
	}
}

func (f *Finder) Load(raw [][]string) error {
	return f.repo.Load(raw)
}

// SetBaseColor replaces the base color. On error the previous color is kept.
func (f *Finder) SetBaseColor(hex string) error {
	c, err := HexToHSL(hex)
	if err != nil {
		return err
	}
	f.state.BaseColor = c
	return nil
}

// SetTolerance replaces the tolerance without range checks.
func (f *Finder) SetTolerance(value int) {
	f.state.Tolerance = value
}

func (f *Finder) State() ReferenceState {
	return f.state
}

func (f *Finder) Repository() *Repository {
	return f.repo
}

// MatchingSchemes is recomputed on every call.
func (f *Finder) MatchingSchemes() []Scheme {
	return f.repo.Match(f.state.BaseColor, f.state.Tolerance)
}
