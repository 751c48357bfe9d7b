package gen

import "github.com/fragmenta/dunegrid"

// RandomFillConfig parameterizes RandomFill.
type RandomFillConfig struct {
	FillProbability        float64 `yaml:"fillProbability"`
	ExcludePerimeterPoints bool    `yaml:"excludePerimeterPoints"`
	PauseEveryNCells       int     `yaml:"pauseEveryNCells"` // <= 0 means run to completion in one stage
}

// RandomFill rolls FillProbability independently for every eligible cell,
// setting it to floor on success. With ExcludePerimeterPoints the outer
// ring is left untouched (and implicitly wall, since WallFloor starts
// zero-valued).
//
// Grounded on spec.md section 4.15; no pack repository seeds a map with
// independent per-cell coin flips (gruid's cave generator goes straight to
// cellular-automata smoothing), so the shape is built from the staged
// generation framework directly.
type RandomFill struct {
	name  string
	wfTag string
	cfg   RandomFillConfig
	rng   dunegrid.RNG
}

// NewRandomFill returns a RandomFill step, or a *ConfigError if
// FillProbability is outside [0,100].
func NewRandomFill(name, wallFloorTag string, cfg RandomFillConfig, rng dunegrid.RNG) (*RandomFill, error) {
	if cfg.FillProbability < 0 || cfg.FillProbability > 100 {
		return nil, &ConfigError{Step: name, Param: "FillProbability", Message: "must be in [0,100]"}
	}
	return &RandomFill{name: name, wfTag: wallFloorTag, cfg: cfg, rng: rng}, nil
}

func (s *RandomFill) Name() string { return s.name }

func (s *RandomFill) Requirements() []Requirement { return nil }

func (s *RandomFill) Stages(ctx *Context) (StageEnumerator, error) {
	wf := ctx.WallFloorOrNew(s.wfTag)
	var pts []dunegrid.Point
	size := wf.Size()
	r := dunegrid.RectangleWH(dunegrid.Point{}, size.X, size.Y)
	if s.cfg.ExcludePerimeterPoints {
		for y := 1; y < size.Y-1; y++ {
			for x := 1; x < size.X-1; x++ {
				pts = append(pts, dunegrid.Pt(x, y))
			}
		}
	} else {
		pts = r.Positions()
	}
	return &randomFillEnumerator{step: s, wf: wf, pts: pts}, nil
}

type randomFillEnumerator struct {
	step *RandomFill
	wf   *dunegrid.BoolGrid
	pts  []dunegrid.Point
	idx  int
}

func (e *randomFillEnumerator) Next() (bool, error) {
	if e.idx >= len(e.pts) {
		return false, nil
	}
	n := len(e.pts) - e.idx
	if e.step.cfg.PauseEveryNCells > 0 && n > e.step.cfg.PauseEveryNCells {
		n = e.step.cfg.PauseEveryNCells
	}
	for i := 0; i < n; i++ {
		p := e.pts[e.idx]
		if e.step.rng.PercentageCheck(e.step.cfg.FillProbability) {
			e.wf.Set(p, true)
		}
		e.idx++
	}
	return e.idx < len(e.pts), nil
}
