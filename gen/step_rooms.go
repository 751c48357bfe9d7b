package gen

import (
	"github.com/fragmenta/dunegrid"
)

// RoomsConfig parameterizes RoomsGeneration.
type RoomsConfig struct {
	MinRooms int `yaml:"minRooms"`
	MaxRooms int `yaml:"maxRooms"`

	RoomMinSize int `yaml:"roomMinSize"`
	RoomMaxSize int `yaml:"roomMaxSize"`

	RoomSizeRatioX float64 `yaml:"roomSizeRatioX"`
	RoomSizeRatioY float64 `yaml:"roomSizeRatioY"`

	MaxCreationAttempts  int `yaml:"maxCreationAttempts"`
	MaxPlacementAttempts int `yaml:"maxPlacementAttempts"`
}

// RoomsGeneration carves a set of non-overlapping rectangular rooms into
// WallFloor, recording each room's inner rectangle in Rooms.
//
// No pack repository carves rectangular rooms (gruid's own map generation
// is random-walk/cellular-automata only); built directly from spec.md
// section 4.5's placement algorithm, in the teacher's "validate once in the
// constructor, carve in Perform" shape.
type RoomsGeneration struct {
	name   string
	cfg    RoomsConfig
	rng    dunegrid.RNG
	tag    string
	roomsTag string
}

// NewRoomsGeneration returns a RoomsGeneration step reading/writing
// WallFloor and Rooms under wallFloorTag/roomsTag, or a *ConfigError if cfg
// violates its documented domain.
func NewRoomsGeneration(name string, cfg RoomsConfig, rng dunegrid.RNG, wallFloorTag, roomsTag string) (*RoomsGeneration, error) {
	if cfg.MinRooms > cfg.MaxRooms {
		return nil, &ConfigError{Step: name, Param: "MinRooms", Message: "must be <= MaxRooms"}
	}
	if cfg.RoomMinSize > cfg.RoomMaxSize {
		return nil, &ConfigError{Step: name, Param: "RoomMinSize", Message: "must be <= RoomMaxSize"}
	}
	if cfg.RoomSizeRatioX <= 0 || cfg.RoomSizeRatioY <= 0 {
		return nil, &ConfigError{Step: name, Param: "RoomSizeRatioX/Y", Message: "must be > 0"}
	}
	return &RoomsGeneration{name: name, cfg: cfg, rng: rng, tag: wallFloorTag, roomsTag: roomsTag}, nil
}

func (s *RoomsGeneration) Name() string { return s.name }

func (s *RoomsGeneration) Requirements() []Requirement { return nil }

func (s *RoomsGeneration) Stages(ctx *Context) (StageEnumerator, error) {
	wf := ctx.WallFloorOrNew(s.tag)
	rooms := ctx.ItemListOrNew(KindRooms, s.roomsTag)
	target := s.cfg.MinRooms + s.rng.Intn(s.cfg.MaxRooms-s.cfg.MinRooms+1)
	return &roomsEnumerator{step: s, ctx: ctx, wf: wf, rooms: rooms, remaining: target}, nil
}

type roomsEnumerator struct {
	step      *RoomsGeneration
	ctx       *Context
	wf        *dunegrid.BoolGrid
	rooms     *ItemList
	remaining int
}

func (e *roomsEnumerator) Next() (bool, error) {
	if e.remaining <= 0 {
		return false, nil
	}
	e.remaining--
	e.step.placeOneRoom(e.ctx, e.wf, e.rooms)
	return e.remaining > 0, nil
}

func (s *RoomsGeneration) placeOneRoom(ctx *Context, wf *dunegrid.BoolGrid, rooms *ItemList) {
	cfg := s.cfg
	size := ctx.Size()
	for attempt := 0; attempt < cfg.MaxCreationAttempts; attempt++ {
		roomSize := cfg.RoomMinSize + s.rng.Intn(cfg.RoomMaxSize-cfg.RoomMinSize+1)
		width := dunegrid.RoundToMultiple(float64(roomSize)*cfg.RoomSizeRatioX, 1)
		height := dunegrid.RoundToMultiple(float64(roomSize)*cfg.RoomSizeRatioY, 1)

		base := roomSize / 4
		if base > 0 {
			adj := s.rng.IntRange(-base, base)
			if s.rng.Bool() {
				width += dunegrid.RoundToMultiple(float64(adj)*cfg.RoomSizeRatioX, 1)
			} else {
				height += dunegrid.RoundToMultiple(float64(adj)*cfg.RoomSizeRatioY, 1)
			}
		}
		width = clampOdd(width, cfg.RoomMinSize)
		height = clampOdd(height, cfg.RoomMinSize)

		for pa := 0; pa < cfg.MaxPlacementAttempts; pa++ {
			maxX := size.X - width - 3
			maxY := size.Y - height - 3
			if maxX < 3 || maxY < 3 {
				continue
			}
			x := oddIn(s.rng, 3, maxX)
			y := oddIn(s.rng, 3, maxY)
			room := dunegrid.RectangleWH(dunegrid.Pt(x, y), width, height)
			expanded := room.Expand(3, 3)
			if anyFloorIn(wf, expanded) {
				continue
			}
			carveFloor(wf, room)
			rooms.Append(room, s.name)
			return
		}
	}
}

// clampOdd clamps dim to at least min and forces it odd.
func clampOdd(dim, min int) int {
	if dim < min {
		dim = min
	}
	if dim%2 == 0 {
		dim++
	}
	return dim
}

// oddIn draws a random odd integer in [lo, hi], with lo/hi coerced odd
// first.
func oddIn(rng dunegrid.RNG, lo, hi int) int {
	if lo%2 == 0 {
		lo++
	}
	if hi%2 == 0 {
		hi--
	}
	if lo > hi {
		return lo
	}
	n := (hi-lo)/2 + 1
	return lo + 2*rng.Intn(n)
}

func anyFloorIn(wf *dunegrid.BoolGrid, r dunegrid.Rectangle) bool {
	for _, p := range r.Positions() {
		if wf.Contains(p) && wf.At(p) {
			return true
		}
	}
	return false
}

func carveFloor(wf *dunegrid.BoolGrid, r dunegrid.Rectangle) {
	for _, p := range r.Positions() {
		wf.Set(p, true)
	}
}
