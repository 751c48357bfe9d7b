package gen

import "github.com/fragmenta/dunegrid"

// componentKey identifies a stored component by its kind name (the
// component's logical type, e.g. "WallFloor" or "Areas") and an optional
// tag distinguishing multiple instances of the same kind.
type componentKey struct {
	kind string
	tag  string
}

// Context is the typed, tagged component bag steps read from and write to.
// It is bound to a fixed map size for its lifetime.
//
// No pack repository has a tagged heterogeneous component bag; built from
// spec.md section 9's own design note (a map keyed by (type, tag) to a
// type-erased box, resolved with a type switch on retrieval) in Go's
// idiomatic form: a map[componentKey]interface{} plus narrow typed
// accessors, rather than a Go type parameter (no repo in the retrieval pack
// uses type parameters).
type Context struct {
	width, height int
	components    map[componentKey]interface{}
}

// NewContext returns an empty context sized width x height. Both must be
// positive.
func NewContext(width, height int) (*Context, error) {
	if width <= 0 {
		return nil, &ConfigError{Step: "Context", Param: "width", Message: "must be positive"}
	}
	if height <= 0 {
		return nil, &ConfigError{Step: "Context", Param: "height", Message: "must be positive"}
	}
	return &Context{width: width, height: height, components: make(map[componentKey]interface{})}, nil
}

// Width returns the context's fixed map width.
func (c *Context) Width() int { return c.width }

// Height returns the context's fixed map height.
func (c *Context) Height() int { return c.height }

// Size returns (width, height) as a Point.
func (c *Context) Size() dunegrid.Point { return dunegrid.Pt(c.width, c.height) }

// Add stores a new component under (kind, tag). It returns a *ConfigError
// if a component is already stored under that exact pair — spec.md section
// 3: "two components with the same (type, tag) are not permitted."
func (c *Context) Add(kind, tag string, v interface{}) error {
	key := componentKey{kind: kind, tag: tag}
	if _, ok := c.components[key]; ok {
		return &ConfigError{Step: "Context", Param: kind, Message: "component already present for tag " + tag}
	}
	c.components[key] = v
	return nil
}

// Set stores or overwrites the component under (kind, tag), bypassing the
// duplicate check Add enforces.
func (c *Context) Set(kind, tag string, v interface{}) {
	c.components[componentKey{kind: kind, tag: tag}] = v
}

// GetFirst returns the component stored under (kind, tag), and whether it
// was present.
func (c *Context) GetFirst(kind, tag string) (interface{}, bool) {
	v, ok := c.components[componentKey{kind: kind, tag: tag}]
	return v, ok
}

// GetFirstOrNew returns the component under (kind, tag) if present,
// otherwise constructs one with factory, stores it, and returns it.
func (c *Context) GetFirstOrNew(kind, tag string, factory func() interface{}) interface{} {
	key := componentKey{kind: kind, tag: tag}
	if v, ok := c.components[key]; ok {
		return v
	}
	v := factory()
	c.components[key] = v
	return v
}

// Require returns the component under (kind, tag), or a
// *MissingComponentError naming stepName if absent.
func (c *Context) Require(stepName, kind, tag string) (interface{}, error) {
	v, ok := c.GetFirst(kind, tag)
	if !ok {
		return nil, &MissingComponentError{Step: stepName, Type: kind, Tag: tag}
	}
	return v, nil
}

// The canonical component kind names spec.md section 6 names.
const (
	KindWallFloor        = "WallFloor"
	KindRooms            = "Rooms"
	KindAreas            = "Areas"
	KindTunnels          = "Tunnels"
	KindMazeConnections  = "MazeConnections"
	KindDoors            = "Doors"
)

// WallFloor returns the boolean floor/wall grid under tag, requiring it.
func (c *Context) WallFloor(stepName, tag string) (*dunegrid.BoolGrid, error) {
	v, err := c.Require(stepName, KindWallFloor, tag)
	if err != nil {
		return nil, err
	}
	return v.(*dunegrid.BoolGrid), nil
}

// WallFloorOrNew returns the WallFloor grid under tag, creating an
// all-wall grid sized to the context if absent.
func (c *Context) WallFloorOrNew(tag string) *dunegrid.BoolGrid {
	v := c.GetFirstOrNew(KindWallFloor, tag, func() interface{} {
		return dunegrid.NewBoolGrid(c.width, c.height)
	})
	return v.(*dunegrid.BoolGrid)
}

// ItemListOrNew returns the ItemList under (kind, tag), creating an empty
// one if absent.
func (c *Context) ItemListOrNew(kind, tag string) *ItemList {
	v := c.GetFirstOrNew(kind, tag, func() interface{} { return NewItemList() })
	return v.(*ItemList)
}

// ItemList returns the ItemList under (kind, tag), requiring it.
func (c *Context) ItemList(stepName, kind, tag string) (*ItemList, error) {
	v, err := c.Require(stepName, kind, tag)
	if err != nil {
		return nil, err
	}
	return v.(*ItemList), nil
}

// DoorListOrNew returns the DoorList under tag, creating an empty one if
// absent.
func (c *Context) DoorListOrNew(tag string) *DoorList {
	v := c.GetFirstOrNew(KindDoors, tag, func() interface{} { return NewDoorList() })
	return v.(*DoorList)
}
