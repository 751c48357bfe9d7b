package gen

import "github.com/fragmenta/dunegrid"

// DoorConnectorConfig parameterizes RoomDoorConnection.
type DoorConnectorConfig struct {
	MaxSidesToConnect int `yaml:"maxSidesToConnect"`
	MinSidesToConnect int `yaml:"minSidesToConnect"`

	CancelSideConnectionSelectChance        float64 `yaml:"cancelSideConnectionSelectChance"`
	CancelConnectionPlacementChance         float64 `yaml:"cancelConnectionPlacementChance"`
	CancelConnectionPlacementChanceIncrease float64 `yaml:"cancelConnectionPlacementChanceIncrease"`
}

// RoomDoorConnection carves doors linking each room to an adjacent
// corridor, one room per pause point.
//
// Grounded on spec.md section 4.10's candidate/trim/carve algorithm; no
// pack repository carves doors since none of them model discrete rooms.
type RoomDoorConnection struct {
	name     string
	roomsTag string
	wfTag    string
	doorsTag string
	cfg      DoorConnectorConfig
	rng      dunegrid.RNG
}

// NewRoomDoorConnection returns a RoomDoorConnection step, or a
// *ConfigError if cfg violates its documented domain.
func NewRoomDoorConnection(name, roomsTag, wallFloorTag, doorsTag string, cfg DoorConnectorConfig, rng dunegrid.RNG) (*RoomDoorConnection, error) {
	if cfg.MaxSidesToConnect < 1 || cfg.MaxSidesToConnect > 4 {
		return nil, &ConfigError{Step: name, Param: "MaxSidesToConnect", Message: "must be in [1,4]"}
	}
	if cfg.MinSidesToConnect > cfg.MaxSidesToConnect {
		return nil, &ConfigError{Step: name, Param: "MinSidesToConnect", Message: "must be <= MaxSidesToConnect"}
	}
	for _, pct := range []float64{cfg.CancelSideConnectionSelectChance, cfg.CancelConnectionPlacementChance, cfg.CancelConnectionPlacementChanceIncrease} {
		if pct < 0 || pct > 100 {
			return nil, &ConfigError{Step: name, Param: "percentage", Message: "must be in [0,100]"}
		}
	}
	return &RoomDoorConnection{name: name, roomsTag: roomsTag, wfTag: wallFloorTag, doorsTag: doorsTag, cfg: cfg, rng: rng}, nil
}

func (s *RoomDoorConnection) Name() string { return s.name }

func (s *RoomDoorConnection) Requirements() []Requirement {
	return []Requirement{{Kind: KindRooms, Tag: s.roomsTag}, {Kind: KindWallFloor, Tag: s.wfTag}}
}

func (s *RoomDoorConnection) Stages(ctx *Context) (StageEnumerator, error) {
	if err := ValidateRequirements(ctx, s.name, s.Requirements()); err != nil {
		return nil, err
	}
	rooms, err := ctx.ItemList(s.name, KindRooms, s.roomsTag)
	if err != nil {
		return nil, err
	}
	wf, err := ctx.WallFloor(s.name, s.wfTag)
	if err != nil {
		return nil, err
	}
	for _, it := range rooms.Items() {
		room := it.(dunegrid.Rectangle)
		for _, p := range room.Expand(1, 1).Positions() {
			if wf.Contains(p) && wf.At(p) && !room.Contains(p) {
				return nil, ErrRegenerate("room-door connector: room wall already breached")
			}
		}
	}
	doors := ctx.DoorListOrNew(s.doorsTag)
	return &roomDoorEnumerator{step: s, wf: wf, rooms: rooms, doors: doors, size: ctx.Size()}, nil
}

type roomDoorEnumerator struct {
	step  *RoomDoorConnection
	wf    *dunegrid.BoolGrid
	rooms *ItemList
	doors *DoorList
	size  dunegrid.Point
	idx   int
}

func (e *roomDoorEnumerator) Next() (bool, error) {
	if e.idx >= e.rooms.Len() {
		return false, nil
	}
	room := e.rooms.Items()[e.idx].(dunegrid.Rectangle)
	e.step.connectRoom(e.wf, e.doors, room, e.size)
	e.idx++
	return e.idx < e.rooms.Len(), nil
}

func (s *RoomDoorConnection) connectRoom(wf *dunegrid.BoolGrid, doors *DoorList, room dunegrid.Rectangle, size dunegrid.Point) {
	sideCandidates := map[dunegrid.Direction][]dunegrid.Point{}
	for _, p := range room.PerimeterPositions() {
		for _, dir := range dunegrid.Cardinals {
			if !room.IsOnSide(p, dir) {
				continue
			}
			w := p.To(dir)
			t := w.To(dir)
			if wf.Contains(w) && wf.At(w) {
				continue
			}
			if t.X < 1 || t.Y < 1 || t.X > size.X-2 || t.Y > size.Y-2 {
				continue
			}
			if !wf.Contains(t) || !wf.At(t) {
				continue
			}
			sideCandidates[dir] = append(sideCandidates[dir], w)
		}
	}
	var sides []dunegrid.Direction
	for dir, pts := range sideCandidates {
		if len(pts) > 0 {
			sides = append(sides, dir)
		}
	}
	for len(sides) > s.cfg.MaxSidesToConnect {
		i := s.rng.Intn(len(sides))
		sides = append(sides[:i], sides[i+1:]...)
	}
	for len(sides) > s.cfg.MinSidesToConnect {
		trimmed := false
		var kept []dunegrid.Direction
		for _, dir := range sides {
			if len(sides)-len(kept) > s.cfg.MinSidesToConnect && !trimmed && s.rng.PercentageCheck(s.cfg.CancelSideConnectionSelectChance) {
				trimmed = true
				continue
			}
			kept = append(kept, dir)
		}
		if !trimmed {
			break
		}
		sides = kept
	}
	rd := doors.RoomDoorsFor(room)
	for _, dir := range sides {
		candidates := sideCandidates[dir]
		cancelChance := s.cfg.CancelConnectionPlacementChance
		for len(candidates) > 0 {
			i := s.rng.Intn(len(candidates))
			w := candidates[i]
			candidates = append(candidates[:i], candidates[i+1:]...)
			if countFloorCardinalNeighbors(wf, w) < 2 {
				continue
			}
			wf.Set(w, true)
			rd.Add(dir, w, s.name)
			if s.rng.PercentageCheck(cancelChance) {
				break
			}
			cancelChance += s.cfg.CancelConnectionPlacementChanceIncrease
		}
	}
}

func countFloorCardinalNeighbors(wf *dunegrid.BoolGrid, p dunegrid.Point) int {
	n := 0
	for _, d := range dunegrid.Cardinals {
		q := p.To(d)
		if wf.Contains(q) && wf.At(q) {
			n++
		}
	}
	return n
}
