package sense

import (
	"math"

	"github.com/fragmenta/dunegrid"
)

// ResistanceView is the read-only grid a source samples while propagating
// light: the resistance (opacity) of every world cell. A source's buffer is
// local and square; this view is the world-sized grid it is bound to.
type ResistanceView interface {
	Size() dunegrid.Point
	Contains(p dunegrid.Point) bool
	At(p dunegrid.Point) float64
}

// Source is the contract a sense map drives: bind it to a resistance view,
// position it, and ask it to (re)compute its local light buffer.
//
// Grounded on the teacher's rl.Lighter/FOV split between the algorithm
// contract and the struct holding cached state, adapted so the struct
// (SourceBase) is the thing embedded by concrete algorithms rather than an
// interface implemented by the grid.
type Source interface {
	// CalculateLight (re)fills the source's local buffer from its bound
	// resistance view. A no-op if the source is disabled or unbound.
	CalculateLight()
	SetResistanceView(v ResistanceView)
	SetPosition(p dunegrid.Point)
	Position() dunegrid.Point
	Radius() int
	Center() int
	Buffer() *dunegrid.FloatGrid
	Enabled() bool
}

// SourceBase holds the state and setters common to every concrete sense
// source: radius/intensity/decay, angle restriction, enablement, the bound
// resistance view, and the local square result buffer. Concrete sources
// (ShadowcastingSource, RippleSource) embed it and implement CalculateLight.
//
// Grounded on spec.md section 4.17's setter rules.
type SourceBase struct {
	enabled    bool
	radius     int
	intensity  float64
	decay      float64
	size       int
	center     int
	buffer     *dunegrid.FloatGrid
	angle      float64 // internal convention: 0 = east, clockwise, in [0,360)
	span       float64
	restricted bool
	resistance ResistanceView
	position   dunegrid.Point

	// OnRadiusChanged fires after a successful SetRadius, with the new
	// radius.
	OnRadiusChanged func(radius int)
}

// NewSourceBase returns a SourceBase with full span and default enablement,
// and an initial radius and intensity. It returns a *ConfigError if either
// is out of domain.
func NewSourceBase(radius int, intensity float64) (SourceBase, error) {
	s := SourceBase{enabled: true, span: 360}
	if err := s.SetIntensity(intensity); err != nil {
		return SourceBase{}, err
	}
	if err := s.SetRadius(radius); err != nil {
		return SourceBase{}, err
	}
	return s, nil
}

// SetRadius reallocates the local buffer to (2*radius+1)^2, clears it, and
// recomputes decay. It rejects radius <= 0.
func (s *SourceBase) SetRadius(radius int) error {
	if radius <= 0 {
		return &ConfigError{Param: "radius", Message: "must be positive"}
	}
	s.radius = radius
	s.size = 2*radius + 1
	s.center = s.size / 2
	s.buffer = dunegrid.NewFloatGrid(s.size, s.size)
	s.decay = s.intensity / (float64(radius) + 1)
	if s.OnRadiusChanged != nil {
		s.OnRadiusChanged(radius)
	}
	return nil
}

// SetIntensity sets the source's peak brightness and recomputes decay. It
// rejects intensity < 0.
func (s *SourceBase) SetIntensity(intensity float64) error {
	if intensity < 0 {
		return &ConfigError{Param: "intensity", Message: "must be >= 0"}
	}
	s.intensity = intensity
	if s.radius > 0 {
		s.decay = intensity / (float64(s.radius) + 1)
	}
	return nil
}

// SetAngle sets the external, compass-style facing (0 = up/north, clockwise
// in degrees) used when the source is angle-restricted.
func (s *SourceBase) SetAngle(compassDegrees float64) {
	a := math.Mod(compassDegrees-90, 360)
	if a < 0 {
		a += 360
	}
	s.angle = a
}

// SetSpan sets the angular width (degrees) of the source's visible arc,
// centered on Angle. A span of 360 disables angle restriction. It rejects
// span outside [0,360].
func (s *SourceBase) SetSpan(span float64) error {
	if span < 0 || span > 360 {
		return &ConfigError{Param: "span", Message: "must be in [0,360]"}
	}
	s.span = span
	s.restricted = span < 360
	return nil
}

// SetEnabled toggles whether Calculate does anything.
func (s *SourceBase) SetEnabled(enabled bool) { s.enabled = enabled }

// Enabled reports whether the source is enabled.
func (s *SourceBase) Enabled() bool { return s.enabled }

// SetResistanceView binds (or, with nil, unbinds) the world resistance grid
// the source samples from. Called by a sense map on source add/remove.
func (s *SourceBase) SetResistanceView(v ResistanceView) { s.resistance = v }

// SetPosition sets the source's world position.
func (s *SourceBase) SetPosition(p dunegrid.Point) { s.position = p }

// Position returns the source's world position.
func (s *SourceBase) Position() dunegrid.Point { return s.position }

// Radius returns the source's current radius.
func (s *SourceBase) Radius() int { return s.radius }

// Center returns the local buffer's center index along either axis.
func (s *SourceBase) Center() int { return s.center }

// Buffer returns the source's local (size x size) result buffer.
func (s *SourceBase) Buffer() *dunegrid.FloatGrid { return s.buffer }

// beginCalculate clears the buffer and seeds its center with the source's
// intensity, returning false (leaving the buffer untouched) if the source
// is disabled or has no bound resistance view.
func (s *SourceBase) beginCalculate() bool {
	if !s.enabled || s.resistance == nil {
		return false
	}
	s.buffer.Fill(0)
	s.buffer.Set(dunegrid.Pt(s.center, s.center), s.intensity)
	return true
}

// withinArc reports whether the local point p (relative to the buffer's
// center) lies within the source's angular restriction, judged by its angle
// from center alone. Unrestricted sources admit every point.
func (s *SourceBase) withinArc(p dunegrid.Point) bool {
	if !s.restricted {
		return true
	}
	dx := float64(p.X - s.center)
	dy := float64(p.Y - s.center)
	if dx == 0 && dy == 0 {
		return true
	}
	a := math.Mod(math.Atan2(dy, dx)*180/math.Pi, 360)
	if a < 0 {
		a += 360
	}
	diff := math.Abs(a - s.angle)
	if diff > 180 {
		diff = 360 - diff
	}
	return diff <= s.span/2
}

// worldAt converts a local buffer point (relative to the buffer's origin)
// to a world point using the source's current position.
func (s *SourceBase) worldAt(local dunegrid.Point) dunegrid.Point {
	return s.position.Add(dunegrid.Pt(local.X-s.center, local.Y-s.center))
}

// resistanceAt returns the resistance at a local buffer point's
// corresponding world cell, or the source's own intensity (fully blocking)
// if the world cell falls outside the bound resistance view.
func (s *SourceBase) resistanceAt(local dunegrid.Point) float64 {
	w := s.worldAt(local)
	if s.resistance == nil || !s.resistance.Contains(w) {
		return s.intensity
	}
	return s.resistance.At(w)
}
