package domain

import "encoding/json"

// Bundle is everything a chart needs for one comparison view.
// It is rebuilt from scratch whenever any input changes.
type Bundle struct {
	Curves       []Curve `json:"curves"`
	Average      *Curve  `json:"average,omitempty"`
	Baseline     *Curve  `json:"baseline,omitempty"`
	MinReference *Curve  `json:"min_reference,omitempty"`
	MaxReference *Curve  `json:"max_reference,omitempty"`
	GlobalMin    float64 `json:"global_min"`
	GlobalMax    float64 `json:"global_max"`
	MaxLength    int     `json:"max_length"`

	// Omitted counts inputs that could not be normalized.
	Omitted int `json:"omitted"`
}

// EmptyBundle is returned when nothing was computable.
func EmptyBundle() Bundle {
	return Bundle{Curves: []Curve{}}
}

// IsEmpty reports whether the bundle carries no data.
func (b Bundle) IsEmpty() bool {
	return b.MaxLength == 0 && len(b.Curves) == 0
}

// MarshalJSON adds an explicit "empty" flag.
func (b Bundle) MarshalJSON() ([]byte, error) {
	type plain Bundle
	return json.Marshal(struct {
		plain
		Empty bool `json:"empty"`
	}{plain(b), b.IsEmpty()})
}

// CurvesByRole returns the curves tagged with role.
func (b Bundle) CurvesByRole(role Role) []Curve {
	var out []Curve
	for _, c := range b.Curves {
		if c.Role == role {
			out = append(out, c)
		}
	}
	return out
}

// All returns data curves followed by the derived curves that are present.
func (b Bundle) All() []Curve {
	out := make([]Curve, 0, len(b.Curves)+4)
	out = append(out, b.Curves...)
	for _, c := range []*Curve{b.Average, b.Baseline, b.MinReference, b.MaxReference} {
		if c != nil {
			out = append(out, *c)
		}
	}
	return out
}
