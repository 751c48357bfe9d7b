package gen

import "github.com/fragmenta/dunegrid"

// RoomDoors buckets a single room's recorded door positions by the side of
// the room they sit on, plus the name of the step that carved each one.
type RoomDoors struct {
	bySide    map[dunegrid.Direction][]dunegrid.Point
	producers map[dunegrid.Point]string
}

func newRoomDoors() *RoomDoors {
	return &RoomDoors{
		bySide:    make(map[dunegrid.Direction][]dunegrid.Point),
		producers: make(map[dunegrid.Point]string),
	}
}

// Add records a door at p on side, produced by producingStep.
func (rd *RoomDoors) Add(side dunegrid.Direction, p dunegrid.Point, producingStep string) {
	rd.bySide[side] = append(rd.bySide[side], p)
	rd.producers[p] = producingStep
}

// Side returns the recorded door positions on side, in insertion order.
func (rd *RoomDoors) Side(side dunegrid.Direction) []dunegrid.Point {
	return rd.bySide[side]
}

// Count returns the total number of recorded doors for the room.
func (rd *RoomDoors) Count() int {
	n := 0
	for _, ps := range rd.bySide {
		n += len(ps)
	}
	return n
}

// Producer returns the step that produced the door at p, and whether one
// was recorded.
func (rd *RoomDoors) Producer(p dunegrid.Point) (string, bool) {
	s, ok := rd.producers[p]
	return s, ok
}

// DoorList maps each room's Rectangle to its RoomDoors record.
//
// Grounded on spec.md section 3's mapping description; built from scratch
// since no pack repo tracks per-room door state (rooms-and-mazes carving is
// not something gruid or the other example repos implement).
type DoorList struct {
	rooms map[dunegrid.Rectangle]*RoomDoors
	order []dunegrid.Rectangle
}

// NewDoorList returns an empty DoorList.
func NewDoorList() *DoorList {
	return &DoorList{rooms: make(map[dunegrid.Rectangle]*RoomDoors)}
}

// RoomDoorsFor returns the RoomDoors record for room, creating an empty one
// if this is the room's first recorded door.
func (dl *DoorList) RoomDoorsFor(room dunegrid.Rectangle) *RoomDoors {
	rd, ok := dl.rooms[room]
	if !ok {
		rd = newRoomDoors()
		dl.rooms[room] = rd
		dl.order = append(dl.order, room)
	}
	return rd
}

// Rooms returns the rooms with at least one recorded door, in the order
// they were first touched.
func (dl *DoorList) Rooms() []dunegrid.Rectangle {
	return dl.order
}

// Doors returns the RoomDoors for room, and whether any were recorded.
func (dl *DoorList) Doors(room dunegrid.Rectangle) (*RoomDoors, bool) {
	rd, ok := dl.rooms[room]
	return rd, ok
}

// Count returns the total number of doors across every room.
func (dl *DoorList) Count() int {
	n := 0
	for _, rd := range dl.rooms {
		n += rd.Count()
	}
	return n
}
