package sense

import (
	"testing"

	"github.com/fragmenta/dunegrid"
)

func TestNewSourceBaseRejectsNonPositiveRadius(t *testing.T) {
	if _, err := NewSourceBase(0, 1); err == nil {
		t.Fatalf("expected an error for a zero radius")
	}
	if _, err := NewSourceBase(-1, 1); err == nil {
		t.Fatalf("expected an error for a negative radius")
	}
}

func TestNewSourceBaseRejectsNegativeIntensity(t *testing.T) {
	if _, err := NewSourceBase(3, -0.1); err == nil {
		t.Fatalf("expected an error for a negative intensity")
	}
}

func TestSetRadiusReallocatesBufferAndFiresCallback(t *testing.T) {
	s, err := NewSourceBase(2, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.Buffer().Size(); got != dunegrid.Pt(5, 5) {
		t.Fatalf("expected a 5x5 buffer for radius 2, got %v", got)
	}
	var fired int
	s.OnRadiusChanged = func(radius int) { fired = radius }
	if err := s.SetRadius(4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.Buffer().Size(); got != dunegrid.Pt(9, 9) {
		t.Fatalf("expected a 9x9 buffer for radius 4, got %v", got)
	}
	if fired != 4 {
		t.Fatalf("expected OnRadiusChanged to fire with 4, got %d", fired)
	}
	if err := s.SetRadius(0); err == nil {
		t.Fatalf("expected an error for a zero radius")
	}
}

func TestSetSpanValidatesRangeAndTogglesRestriction(t *testing.T) {
	s, _ := NewSourceBase(3, 1)
	if s.restricted {
		t.Fatalf("expected a fresh source to be unrestricted")
	}
	if err := s.SetSpan(-1); err == nil {
		t.Fatalf("expected an error for a negative span")
	}
	if err := s.SetSpan(361); err == nil {
		t.Fatalf("expected an error for a span above 360")
	}
	if err := s.SetSpan(90); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.restricted {
		t.Fatalf("expected a span below 360 to restrict the source")
	}
	if err := s.SetSpan(360); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.restricted {
		t.Fatalf("expected a span of 360 to lift the restriction")
	}
}

func TestWithinArcAdmitsEverythingWhenUnrestricted(t *testing.T) {
	s, _ := NewSourceBase(3, 1)
	if !s.withinArc(dunegrid.Pt(0, 0)) {
		t.Fatalf("expected an unrestricted source to admit every point")
	}
}

func TestWithinArcRestrictsToFacingCone(t *testing.T) {
	s, _ := NewSourceBase(3, 1)
	s.SetAngle(0) // facing north
	if err := s.SetSpan(90); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	north := dunegrid.Pt(s.center, s.center-2)
	if !s.withinArc(north) {
		t.Fatalf("expected the point directly ahead to be within a 90 degree facing cone")
	}
	south := dunegrid.Pt(s.center, s.center+2)
	if s.withinArc(south) {
		t.Fatalf("expected the point directly behind to be excluded from a 90 degree facing cone")
	}
}

func TestBeginCalculateRequiresEnabledAndBoundSource(t *testing.T) {
	s, _ := NewSourceBase(2, 5)
	if s.beginCalculate() {
		t.Fatalf("expected beginCalculate to fail with no bound resistance view")
	}
	s.SetResistanceView(dunegrid.NewFloatGrid(10, 10))
	if !s.beginCalculate() {
		t.Fatalf("expected beginCalculate to succeed once bound")
	}
	if got := s.Buffer().At(dunegrid.Pt(s.center, s.center)); got != 5 {
		t.Fatalf("expected the buffer center to seed with intensity 5, got %v", got)
	}
	s.SetEnabled(false)
	if s.beginCalculate() {
		t.Fatalf("expected beginCalculate to fail once disabled")
	}
}

func TestResistanceAtFallsBackToIntensityOutsideView(t *testing.T) {
	s, _ := NewSourceBase(2, 3)
	s.SetResistanceView(dunegrid.NewFloatGrid(4, 4))
	s.SetPosition(dunegrid.Pt(0, 0))
	// local (0,0) maps to world (-2,-2), outside the 4x4 view.
	if got := s.resistanceAt(dunegrid.Pt(0, 0)); got != 3 {
		t.Fatalf("expected out-of-view resistance to fall back to intensity 3, got %v", got)
	}
}
