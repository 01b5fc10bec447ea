package domain

import (
	"fmt"
	"strings"
)

// Direction is the trade side a curve is evaluated for.
type Direction string

const (
	DirectionLong  Direction = "LONG"
	DirectionShort Direction = "SHORT"
)

// ParseDirection is case-insensitive.
func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToUpper(strings.TrimSpace(s))) {
	case DirectionLong:
		return DirectionLong, nil
	case DirectionShort:
		return DirectionShort, nil
	}
	return "", fmt.Errorf("unknown direction %q", s)
}

// Valid reports whether d is LONG or SHORT.
func (d Direction) Valid() bool {
	return d == DirectionLong || d == DirectionShort
}

// Point is one sample of a normalized curve.
// Index 0 is the anchor itself; Value is percent change since the anchor.
type Point struct {
	Index int     `json:"index"`
	Value float64 `json:"value"`
}

// Role tags how a curve is meant to be displayed.
type Role string

const (
	RoleCompleted         Role = "completed"
	RoleHistoricalAverage Role = "historical-average"
	RoleActive            Role = "active"
	RoleBaseline          Role = "baseline"
	RoleMinReference      Role = "min-reference"
	RoleMaxReference      Role = "max-reference"
)

// Curve is a normalized series with its display role.
type Curve struct {
	ID     string  `json:"id"`
	Role   Role    `json:"role"`
	Points []Point `json:"points"`
}

// Len returns the number of points.
func (c Curve) Len() int {
	return len(c.Points)
}

// Last returns the final point value, or 0 for an empty curve.
func (c Curve) Last() float64 {
	if len(c.Points) == 0 {
		return 0
	}
	return c.Points[len(c.Points)-1].Value
}
