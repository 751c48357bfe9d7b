package gen

import "github.com/fragmenta/dunegrid"

// CellularAutomataConfig parameterizes CellularAutomataCaveSmoothing.
type CellularAutomataConfig struct {
	TotalIterations   int `yaml:"totalIterations"`
	CutoffBigAreaFill int `yaml:"cutoffBigAreaFill"` // <= TotalIterations
}

// CellularAutomataCaveSmoothing runs the two-phase wall/floor cutoff rule
// over WallFloor for TotalIterations passes, then seals the outer
// perimeter to wall.
//
// Grounded on the teacher's rl.MapGen.applyRule/applyRuleWithoutW1/
// applyRuleWithoutW2 double-buffer cutoff-pair shape, adapted from a
// user-supplied rule list to spec.md section 4.12's fixed two-phase rule
// (an early phase using both a tight and a loose wall count, a late phase
// using only the tight count).
type CellularAutomataCaveSmoothing struct {
	name  string
	wfTag string
	cfg   CellularAutomataConfig
	rng   dunegrid.RNG
}

// NewCellularAutomataCaveSmoothing returns a smoothing step, or a
// *ConfigError if cfg violates its documented domain.
func NewCellularAutomataCaveSmoothing(name, wallFloorTag string, cfg CellularAutomataConfig, rng dunegrid.RNG) (*CellularAutomataCaveSmoothing, error) {
	if cfg.CutoffBigAreaFill > cfg.TotalIterations {
		return nil, &ConfigError{Step: name, Param: "CutoffBigAreaFill", Message: "must be <= TotalIterations"}
	}
	return &CellularAutomataCaveSmoothing{name: name, wfTag: wallFloorTag, cfg: cfg, rng: rng}, nil
}

func (s *CellularAutomataCaveSmoothing) Name() string { return s.name }

func (s *CellularAutomataCaveSmoothing) Requirements() []Requirement { return nil }

func (s *CellularAutomataCaveSmoothing) Stages(ctx *Context) (StageEnumerator, error) {
	wf := ctx.WallFloorOrNew(s.wfTag)
	scratch := dunegrid.NewBoolGrid(ctx.Width(), ctx.Height())
	return &caEnumerator{step: s, wf: wf, scratch: scratch}, nil
}

type caEnumerator struct {
	step    *CellularAutomataCaveSmoothing
	wf      *dunegrid.BoolGrid
	scratch *dunegrid.BoolGrid
	i       int
}

func (e *caEnumerator) Next() (bool, error) {
	if e.i >= e.step.cfg.TotalIterations {
		return false, nil
	}
	size := e.wf.Size()
	e.scratch.Copy(e.wf)
	bigAreaPhase := e.i < e.step.cfg.CutoffBigAreaFill
	for y := 1; y < size.Y-1; y++ {
		for x := 1; x < size.X-1; x++ {
			p := dunegrid.Pt(x, y)
			w1 := countWallsInRadius(e.scratch, p, 1)
			var floor bool
			if bigAreaPhase {
				w2 := countWallsInRadius(e.scratch, p, 2)
				floor = w1 < 5 && w2 > 2
			} else {
				floor = w1 < 5
			}
			e.wf.Set(p, floor)
		}
	}
	e.i++
	if e.i >= e.step.cfg.TotalIterations {
		sealPerimeter(e.wf)
		return false, nil
	}
	return true, nil
}

// countWallsInRadius counts wall cells in the square of the given radius
// centered at p, treating any position outside the grid as a wall.
func countWallsInRadius(wf *dunegrid.BoolGrid, p dunegrid.Point, radius int) int {
	n := 0
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			q := dunegrid.Pt(p.X+dx, p.Y+dy)
			if !wf.Contains(q) {
				n++
				continue
			}
			if !wf.At(q) {
				n++
			}
		}
	}
	return n
}

func sealPerimeter(wf *dunegrid.BoolGrid) {
	size := wf.Size()
	r := dunegrid.RectangleWH(dunegrid.Point{}, size.X, size.Y)
	for _, p := range r.PerimeterPositions() {
		wf.Set(p, false)
	}
}
