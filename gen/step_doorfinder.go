package gen

import "github.com/fragmenta/dunegrid"

// DoorFinder scans each room's one-cell-expanded perimeter for floor cells
// already carved there (doors placed by an earlier step, or openings a cave
// pass happened to create) and records them in Doors.
//
// Grounded on spec.md section 4.13's scan; no pack repository tracks
// per-room door state.
type DoorFinder struct {
	name     string
	roomsTag string
	wfTag    string
	doorsTag string
}

// NewDoorFinder returns a DoorFinder step.
func NewDoorFinder(name, roomsTag, wallFloorTag, doorsTag string) *DoorFinder {
	return &DoorFinder{name: name, roomsTag: roomsTag, wfTag: wallFloorTag, doorsTag: doorsTag}
}

func (s *DoorFinder) Name() string { return s.name }

func (s *DoorFinder) Requirements() []Requirement {
	return []Requirement{{Kind: KindRooms, Tag: s.roomsTag}, {Kind: KindWallFloor, Tag: s.wfTag}}
}

func (s *DoorFinder) Stages(ctx *Context) (StageEnumerator, error) {
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
	doors := ctx.DoorListOrNew(s.doorsTag)
	return singleStage(func() error {
		for _, it := range rooms.Items() {
			room := it.(dunegrid.Rectangle)
			expanded := room.Expand(1, 1)
			rd := doors.RoomDoorsFor(room)
			for _, p := range expanded.PerimeterPositions() {
				if !wf.Contains(p) || !wf.At(p) {
					continue
				}
				for _, dir := range dunegrid.Cardinals {
					if expanded.IsOnSide(p, dir) {
						rd.Add(dir, p, s.name)
						break
					}
				}
			}
		}
		return nil
	}), nil
}
