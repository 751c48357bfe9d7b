package gen

import (
	"github.com/fragmenta/dunegrid"
	"github.com/fragmenta/dunegrid/area"
)

// TrimConfig parameterizes TunnelDeadEndTrimming.
type TrimConfig struct {
	MaxTrimIterations int     `yaml:"maxTrimIterations"` // -1 = unlimited
	SaveDeadEndChance float64 `yaml:"saveDeadEndChance"`
}

// TunnelDeadEndTrimming repeatedly prunes unsaved dead-end cells from every
// tunnel area until none remain or MaxTrimIterations passes complete.
//
// Grounded on spec.md section 4.11's algorithm; no pack repository trims
// generated corridors (gruid's maps are never post-processed this way).
type TunnelDeadEndTrimming struct {
	name       string
	wfTag      string
	tunnelsTag string
	cfg        TrimConfig
	rng        dunegrid.RNG
}

// NewTunnelDeadEndTrimming returns a TunnelDeadEndTrimming step.
func NewTunnelDeadEndTrimming(name, wallFloorTag, tunnelsTag string, cfg TrimConfig, rng dunegrid.RNG) *TunnelDeadEndTrimming {
	return &TunnelDeadEndTrimming{name: name, wfTag: wallFloorTag, tunnelsTag: tunnelsTag, cfg: cfg, rng: rng}
}

func (s *TunnelDeadEndTrimming) Name() string { return s.name }

func (s *TunnelDeadEndTrimming) Requirements() []Requirement {
	return []Requirement{{Kind: KindWallFloor, Tag: s.wfTag}, {Kind: KindTunnels, Tag: s.tunnelsTag}}
}

func (s *TunnelDeadEndTrimming) Stages(ctx *Context) (StageEnumerator, error) {
	if err := ValidateRequirements(ctx, s.name, s.Requirements()); err != nil {
		return nil, err
	}
	wf, err := ctx.WallFloor(s.name, s.wfTag)
	if err != nil {
		return nil, err
	}
	tunnels, err := ctx.ItemList(s.name, KindTunnels, s.tunnelsTag)
	if err != nil {
		return nil, err
	}
	return &trimEnumerator{step: s, wf: wf, tunnels: tunnels, saved: make(map[dunegrid.Point]bool)}, nil
}

type trimEnumerator struct {
	step       *TunnelDeadEndTrimming
	wf         *dunegrid.BoolGrid
	tunnels    *ItemList
	saved      map[dunegrid.Point]bool
	iterations int
}

func (e *trimEnumerator) Next() (bool, error) {
	cfg := e.step.cfg
	if cfg.MaxTrimIterations >= 0 && e.iterations >= cfg.MaxTrimIterations {
		return false, nil
	}
	anyTrimmed := false
	for _, it := range e.tunnels.Items() {
		a := it.(*area.Area)
		var dead []dunegrid.Point
		for _, p := range a.Points() {
			if e.isDeadEnd(p) {
				dead = append(dead, p)
			}
		}
		var toTrim []dunegrid.Point
		for _, p := range dead {
			if e.saved[p] {
				continue
			}
			if e.step.rng.PercentageCheck(cfg.SaveDeadEndChance) {
				e.saved[p] = true
				continue
			}
			toTrim = append(toTrim, p)
		}
		for _, p := range toTrim {
			e.wf.Set(p, false)
			a.Remove(p)
			anyTrimmed = true
		}
	}
	e.iterations++
	if !anyTrimmed {
		return false, nil
	}
	if cfg.MaxTrimIterations >= 0 && e.iterations >= cfg.MaxTrimIterations {
		return false, nil
	}
	return true, nil
}

// isDeadEnd reports whether p has exactly one cardinal floor neighbor.
func (e *trimEnumerator) isDeadEnd(p dunegrid.Point) bool {
	floorCount := 0
	for _, d := range dunegrid.Cardinals {
		n := p.To(d)
		if e.wf.Contains(n) && e.wf.At(n) {
			floorCount++
		}
	}
	return floorCount == 1
}
