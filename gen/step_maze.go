package gen

import (
	"github.com/fragmenta/dunegrid"
	"github.com/fragmenta/dunegrid/area"
)

// MazeConfig parameterizes MazeGeneration.
type MazeConfig struct {
	CrawlerChangeDirectionImprovement int `yaml:"crawlerChangeDirectionImprovement"`
}

// MazeGeneration carves backtracking-DFS corridors ("rooms and mazes"
// style) into WallFloor, recording each crawler's carved area in Tunnels.
//
// No pack repository implements a backtracking maze crawler; built
// directly from spec.md section 4.6's algorithm text, in the teacher's
// "one struct per step, Rand field, carve directly into the grid" shape.
type MazeGeneration struct {
	name   string
	cfg    MazeConfig
	rng    dunegrid.RNG
	wfTag  string
	tunTag string
}

// NewMazeGeneration returns a MazeGeneration step, or a *ConfigError if cfg
// violates its documented domain.
func NewMazeGeneration(name string, cfg MazeConfig, rng dunegrid.RNG, wallFloorTag, tunnelsTag string) (*MazeGeneration, error) {
	if cfg.CrawlerChangeDirectionImprovement < 0 || cfg.CrawlerChangeDirectionImprovement > 100 {
		return nil, &ConfigError{Step: name, Param: "CrawlerChangeDirectionImprovement", Message: "must be in [0,100]"}
	}
	return &MazeGeneration{name: name, cfg: cfg, rng: rng, wfTag: wallFloorTag, tunTag: tunnelsTag}, nil
}

func (s *MazeGeneration) Name() string                { return s.name }
func (s *MazeGeneration) Requirements() []Requirement { return nil }

func (s *MazeGeneration) Stages(ctx *Context) (StageEnumerator, error) {
	wf := ctx.WallFloorOrNew(s.wfTag)
	tunnels := ctx.ItemListOrNew(KindTunnels, s.tunTag)
	return &mazeEnumerator{step: s, ctx: ctx, wf: wf, tunnels: tunnels, linearScanStart: dunegrid.Pt(1, 1)}, nil
}

type mazeEnumerator struct {
	step             *MazeGeneration
	ctx              *Context
	wf               *dunegrid.BoolGrid
	tunnels          *ItemList
	linearScanStart  dunegrid.Point
	randomSeedsTried int
	exhausted        bool
}

func (e *mazeEnumerator) Next() (bool, error) {
	if e.exhausted {
		return false, nil
	}
	seed, ok := e.findSeed()
	if !ok {
		e.exhausted = true
		return false, nil
	}
	a := e.step.crawl(e.wf, seed)
	if a.Count() > 0 {
		e.tunnels.Append(a, e.step.name)
	}
	return true, nil
}

// findSeed locates an empty seed: an odd-coordinate, non-edge cell whose
// eight-way neighbors are all in bounds and wall. The first 100 seeds are
// drawn at random; thereafter a deterministic linear scan takes over.
func (e *mazeEnumerator) findSeed() (dunegrid.Point, bool) {
	size := e.ctx.Size()
	for ; e.randomSeedsTried < 100; e.randomSeedsTried++ {
		x := oddIn(e.step.rng, 1, size.X-2)
		y := oddIn(e.step.rng, 1, size.Y-2)
		p := dunegrid.Pt(x, y)
		if e.isEmptySeed(p, size) {
			e.randomSeedsTried++
			return p, true
		}
	}
	for y := e.linearScanStart.Y; y < size.Y-1; y++ {
		startX := 1
		if y == e.linearScanStart.Y {
			startX = e.linearScanStart.X
		}
		for x := startX; x < size.X-1; x++ {
			p := dunegrid.Pt(x, y)
			if e.isEmptySeed(p, size) {
				e.linearScanStart = dunegrid.Pt(x+1, y)
				return p, true
			}
		}
		e.linearScanStart = dunegrid.Pt(1, y+1)
	}
	return dunegrid.Point{}, false
}

func (e *mazeEnumerator) isEmptySeed(p dunegrid.Point, size dunegrid.Point) bool {
	if p.X%2 == 0 || p.Y%2 == 0 {
		return false
	}
	if p.X <= 0 || p.Y <= 0 || p.X >= size.X-1 || p.Y >= size.Y-1 {
		return false
	}
	for _, n := range dunegrid.EightWay.Neighbors(p) {
		if !e.wf.Contains(n) || e.wf.At(n) {
			return false
		}
	}
	return true
}

type crawlerFrame struct {
	pos    dunegrid.Point
	facing dunegrid.Direction
	pctCtr int
}

// crawl performs the backtracking DFS starting at seed, returning the
// carved area.
func (s *MazeGeneration) crawl(wf *dunegrid.BoolGrid, seed dunegrid.Point) *area.Area {
	a := area.NewArea()
	wf.Set(seed, true)
	a.Add(seed)
	stack := []crawlerFrame{{pos: seed, facing: dunegrid.None}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		valid := s.validDirections(wf, top.pos)
		if len(valid) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		facingValid := false
		for _, d := range valid {
			if d == top.facing {
				facingValid = true
				break
			}
		}
		var dir dunegrid.Direction
		switch {
		case top.facing == dunegrid.None || !facingValid:
			dir = valid[s.rng.Intn(len(valid))]
			top.facing = dir
			top.pctCtr = 0
		case s.rng.PercentageCheck(float64(top.pctCtr)):
			dir = valid[s.rng.Intn(len(valid))]
			top.facing = dir
			top.pctCtr = 0
		default:
			dir = top.facing
			top.pctCtr += s.cfg.CrawlerChangeDirectionImprovement
		}
		next := top.pos.To(dir)
		wf.Set(next, true)
		a.Add(next)
		stack = append(stack, crawlerFrame{pos: next, facing: dir})
	}
	return a
}

// validDirections returns the cardinal directions from p that are valid
// per spec.md section 4.6: the neighbor itself lies in the map interior,
// and all of its eight-way neighbors except the one back toward p are wall
// and in-bounds.
func (s *MazeGeneration) validDirections(wf *dunegrid.BoolGrid, p dunegrid.Point) []dunegrid.Direction {
	size := wf.Size()
	var valid []dunegrid.Direction
	for _, d := range dunegrid.Cardinals {
		n := p.To(d)
		if n.X <= 0 || n.Y <= 0 || n.X >= size.X-1 || n.Y >= size.Y-1 {
			continue
		}
		back := d.Opposite()
		ok := true
		for _, nd := range dunegrid.EightWayDirections {
			if nd == back {
				continue
			}
			q := n.To(nd)
			if !wf.Contains(q) || wf.At(q) {
				ok = false
				break
			}
		}
		if ok {
			valid = append(valid, d)
		}
	}
	return valid
}
