package gen

import (
	"github.com/fragmenta/dunegrid"
	"github.com/fragmenta/dunegrid/area"
)

// OrderedAreaConnector optionally shuffles the input area list, then
// carves a tunnel between each consecutive pair.
//
// Grounded on spec.md section 4.8; the shuffle uses dunegrid.RNG.Shuffle,
// the same Fisher-Yates-over-an-interface shape the teacher's own RNG
// wrapper exposes for other steps.
type OrderedAreaConnector struct {
	name       string
	areasTag   string
	wfTag      string
	tunnelsTag string
	shuffle    bool
	selector   PointSelector
	creator    TunnelCreator
	rng        dunegrid.RNG
}

// NewOrderedAreaConnector returns an OrderedAreaConnector.
func NewOrderedAreaConnector(name, areasTag, wallFloorTag, tunnelsTag string, shuffle bool, selector PointSelector, creator TunnelCreator, rng dunegrid.RNG) *OrderedAreaConnector {
	return &OrderedAreaConnector{name: name, areasTag: areasTag, wfTag: wallFloorTag, tunnelsTag: tunnelsTag, shuffle: shuffle, selector: selector, creator: creator, rng: rng}
}

func (s *OrderedAreaConnector) Name() string { return s.name }

func (s *OrderedAreaConnector) Requirements() []Requirement {
	return []Requirement{{Kind: KindAreas, Tag: s.areasTag}, {Kind: KindWallFloor, Tag: s.wfTag}}
}

func (s *OrderedAreaConnector) Stages(ctx *Context) (StageEnumerator, error) {
	if err := ValidateRequirements(ctx, s.name, s.Requirements()); err != nil {
		return nil, err
	}
	areasList, err := ctx.ItemList(s.name, KindAreas, s.areasTag)
	if err != nil {
		return nil, err
	}
	wf, err := ctx.WallFloor(s.name, s.wfTag)
	if err != nil {
		return nil, err
	}
	items := append([]interface{}(nil), areasList.Items()...)
	if s.shuffle {
		s.rng.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
	}
	tunnels := ctx.ItemListOrNew(KindTunnels, s.tunnelsTag)
	return &orderedConnectorEnumerator{step: s, wf: wf, areas: items, tunnels: tunnels, idx: 1}, nil
}

type orderedConnectorEnumerator struct {
	step    *OrderedAreaConnector
	wf      *dunegrid.BoolGrid
	areas   []interface{}
	tunnels *ItemList
	idx     int
}

func (e *orderedConnectorEnumerator) Next() (bool, error) {
	if e.idx >= len(e.areas) {
		return false, nil
	}
	a := area.NewMultiAreaFrom([]*area.Area{e.areas[e.idx].(*area.Area)})
	prev := area.NewMultiAreaFrom([]*area.Area{e.areas[e.idx-1].(*area.Area)})
	from, to := e.step.selector(a, prev)
	carved := e.step.creator.Carve(e.wf, from, to, e.step.rng)
	e.tunnels.Append(carved, e.step.name)
	e.idx++
	return e.idx < len(e.areas), nil
}
