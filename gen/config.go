package gen

import (
	"io"

	"github.com/fragmenta/dunegrid"
	"gopkg.in/yaml.v3"
)

// StepConfig is one entry in a PipelineConfig's step list: a kind tag
// selecting which concrete step to build, plus every field any step kind
// might need. Unused fields for a given kind are ignored.
//
// Grounded on the domain stack's decision to load pipelines from YAML the
// way the pack's other dungeon generator loads its own run configuration
// (dshills-dungo reads a parameter struct from disk rather than building
// pipelines in Go literals); gopkg.in/yaml.v3 is the library that generator
// uses for its config files, used here for the gen package's own
// tree-of-steps document.
type StepConfig struct {
	Kind string `yaml:"kind"`
	Name string `yaml:"name"`

	WallFloorTag string `yaml:"wallFloorTag,omitempty"`
	RoomsTag     string `yaml:"roomsTag,omitempty"`
	AreasTag     string `yaml:"areasTag,omitempty"`
	TunnelsTag   string `yaml:"tunnelsTag,omitempty"`
	DoorsTag     string `yaml:"doorsTag,omitempty"`
	SrcKind      string `yaml:"srcKind,omitempty"`
	SrcTag       string `yaml:"srcTag,omitempty"`
	DstKind      string `yaml:"dstKind,omitempty"`
	DstTag       string `yaml:"dstTag,omitempty"`
	ClearSource  bool   `yaml:"clearSource,omitempty"`

	AdjacencyRule string `yaml:"adjacencyRule,omitempty"` // "cardinals" | "diagonals" | "eightway"
	Metric        string `yaml:"metric,omitempty"`        // "manhattan" | "chebyshev" | "euclidean"
	TunnelCreator string `yaml:"tunnelCreator,omitempty"` // "horizontalvertical" | "directline"
	DoubleWide    bool   `yaml:"doubleWide,omitempty"`
	Shuffle       bool   `yaml:"shuffle,omitempty"`

	Rooms              *RoomsConfig            `yaml:"rooms,omitempty"`
	Maze               *MazeConfig             `yaml:"maze,omitempty"`
	DoorConnector      *DoorConnectorConfig    `yaml:"doorConnector,omitempty"`
	Trim               *TrimConfig             `yaml:"trim,omitempty"`
	CellularAutomata   *CellularAutomataConfig `yaml:"cellularAutomata,omitempty"`
	RandomFill         *RandomFillConfig       `yaml:"randomFill,omitempty"`
}

// PipelineConfig is a whole generation pipeline: map dimensions, the random
// seed, and the ordered list of steps to run.
type PipelineConfig struct {
	Width  int          `yaml:"width"`
	Height int          `yaml:"height"`
	Seed   int64        `yaml:"seed"`
	Steps  []StepConfig `yaml:"steps"`
}

// LoadPipelineConfig reads and parses a PipelineConfig document from r.
func LoadPipelineConfig(r io.Reader) (*PipelineConfig, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var cfg PipelineConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func parseAdjacencyRule(name string) dunegrid.AdjacencyRule {
	switch name {
	case "diagonals":
		return dunegrid.DiagonalsRule
	case "eightway":
		return dunegrid.EightWay
	default:
		return dunegrid.CardinalsRule
	}
}

func parseDistance(name string) dunegrid.Distance {
	switch name {
	case "chebyshev":
		return dunegrid.Chebyshev
	case "euclidean":
		return dunegrid.Euclidean
	default:
		return dunegrid.Manhattan
	}
}

func parseTunnelCreator(sc StepConfig, width int) TunnelCreator {
	if sc.TunnelCreator == "directline" {
		return DirectLine{Metric: parseDistance(sc.Metric), DoubleWide: sc.DoubleWide, MapWidth: width}
	}
	return HorizontalVertical{}
}

// Build constructs the ordered step list a Generator runs, wiring an RNG
// seeded from c.Seed into every step that needs one. At the first step that
// fails to build it returns that step constructor's own error unchanged; an
// unrecognized Kind value yields a *ConfigError.
func (c *PipelineConfig) Build() ([]Step, error) {
	rng := dunegrid.NewRand(c.Seed)
	steps := make([]Step, 0, len(c.Steps))
	for _, sc := range c.Steps {
		step, err := c.buildStep(sc, rng)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	return steps, nil
}

func (c *PipelineConfig) buildStep(sc StepConfig, rng dunegrid.RNG) (Step, error) {
	switch sc.Kind {
	case "rectangleFiller":
		return NewRectangleFiller(sc.Name, sc.WallFloorTag), nil
	case "randomFill":
		cfg := RandomFillConfig{}
		if sc.RandomFill != nil {
			cfg = *sc.RandomFill
		}
		return NewRandomFill(sc.Name, sc.WallFloorTag, cfg, rng)
	case "cellularAutomata":
		cfg := CellularAutomataConfig{}
		if sc.CellularAutomata != nil {
			cfg = *sc.CellularAutomata
		}
		return NewCellularAutomataCaveSmoothing(sc.Name, sc.WallFloorTag, cfg, rng)
	case "rooms":
		cfg := RoomsConfig{}
		if sc.Rooms != nil {
			cfg = *sc.Rooms
		}
		return NewRoomsGeneration(sc.Name, cfg, rng, sc.WallFloorTag, sc.RoomsTag)
	case "maze":
		cfg := MazeConfig{}
		if sc.Maze != nil {
			cfg = *sc.Maze
		}
		return NewMazeGeneration(sc.Name, cfg, rng, sc.WallFloorTag, sc.TunnelsTag)
	case "rectToArea":
		return NewRectToArea(sc.Name, sc.SrcKind, sc.SrcTag, sc.DstKind, sc.DstTag), nil
	case "areaFinder":
		return NewAreaFinderStep(sc.Name, sc.WallFloorTag, sc.AreasTag, parseAdjacencyRule(sc.AdjacencyRule)), nil
	case "closestAreaConnector":
		metric := parseDistance(sc.Metric)
		creator := parseTunnelCreator(sc, c.Width)
		selector := NearestPointSelector(metric)
		return NewClosestAreaConnector(sc.Name, sc.AreasTag, sc.WallFloorTag, sc.TunnelsTag, selector, metric, creator, rng), nil
	case "orderedAreaConnector":
		metric := parseDistance(sc.Metric)
		creator := parseTunnelCreator(sc, c.Width)
		selector := NearestPointSelector(metric)
		return NewOrderedAreaConnector(sc.Name, sc.AreasTag, sc.WallFloorTag, sc.TunnelsTag, sc.Shuffle, selector, creator, rng), nil
	case "listAppender":
		return NewListAppender(sc.Name, sc.SrcKind, sc.SrcTag, sc.DstKind, sc.DstTag, sc.ClearSource), nil
	case "duplicatePointRemover":
		return NewDuplicatePointRemover(sc.Name, sc.SrcKind, sc.SrcTag), nil
	case "deadEndTrim":
		cfg := TrimConfig{}
		if sc.Trim != nil {
			cfg = *sc.Trim
		}
		return NewTunnelDeadEndTrimming(sc.Name, sc.WallFloorTag, sc.TunnelsTag, cfg, rng), nil
	case "roomDoorConnector":
		cfg := DoorConnectorConfig{}
		if sc.DoorConnector != nil {
			cfg = *sc.DoorConnector
		}
		return NewRoomDoorConnection(sc.Name, sc.RoomsTag, sc.WallFloorTag, sc.DoorsTag, cfg, rng)
	case "doorFinder":
		return NewDoorFinder(sc.Name, sc.RoomsTag, sc.WallFloorTag, sc.DoorsTag), nil
	default:
		return nil, &ConfigError{Step: sc.Name, Param: "kind", Message: "unrecognized step kind " + sc.Kind}
	}
}
