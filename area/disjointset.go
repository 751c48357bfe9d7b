package area

// DisjointSet is a union-by-size, path-compressing union-find structure over
// integer indices [0, n).
//
// No repository in the retrieval pack implements union-find; this is built
// directly from spec.md section 4.3's algorithm text, in the teacher's flat
// parallel-slice style (rl/fov.go keeps a single []fovNode indexed by
// position rather than a pointer-linked tree; DisjointSet keeps parallel
// []int slices indexed by element instead of boxing each node).
type DisjointSet struct {
	parents []int
	sizes   []int
	count   int
	onJoin  func(larger, smaller int)
}

// NewDisjointSet returns a DisjointSet of n singleton sets, each its own
// root.
func NewDisjointSet(n int) *DisjointSet {
	ds := &DisjointSet{
		parents: make([]int, n),
		sizes:   make([]int, n),
		count:   n,
	}
	for i := range ds.parents {
		ds.parents[i] = i
		ds.sizes[i] = 1
	}
	return ds
}

// OnJoin registers a callback fired synchronously, exactly once per actual
// union, immediately after the union completes. It is called with the
// larger set's root first and the smaller set's root second, per spec.md
// section 4.3. Per spec.md section 9's design note, this is a plain
// callback field, not a pub-sub bus.
func (ds *DisjointSet) OnJoin(fn func(larger, smaller int)) {
	ds.onJoin = fn
}

// Count returns the number of distinct sets remaining.
func (ds *DisjointSet) Count() int {
	return ds.count
}

// Find returns the root of the set containing i, path-compressing along the
// way.
func (ds *DisjointSet) Find(i int) int {
	root := i
	for ds.parents[root] != root {
		root = ds.parents[root]
	}
	for ds.parents[i] != root {
		ds.parents[i], i = root, ds.parents[i]
	}
	return root
}

// InSameSet reports whether a and b are currently in the same set.
func (ds *DisjointSet) InSameSet(a, b int) bool {
	return ds.Find(a) == ds.Find(b)
}

// Size returns the number of elements in i's set.
func (ds *DisjointSet) Size(i int) int {
	return ds.sizes[ds.Find(i)]
}

// MakeUnion merges the sets containing a and b. If they are already in the
// same set, it is a no-op. Otherwise the smaller-sized root becomes a child
// of the larger; when sizes are equal, b's root is folded into a's root.
// OnJoin, if set, fires exactly once, naming the larger (surviving) root
// first and the smaller (now-folded) root second.
func (ds *DisjointSet) MakeUnion(a, b int) {
	ra, rb := ds.Find(a), ds.Find(b)
	if ra == rb {
		return
	}
	larger, smaller := rb, ra
	if ds.sizes[ra] >= ds.sizes[rb] {
		larger, smaller = ra, rb
	}
	ds.parents[smaller] = larger
	ds.sizes[larger] += ds.sizes[smaller]
	ds.count--
	if ds.onJoin != nil {
		ds.onJoin(larger, smaller)
	}
}

// KeyedDisjointSet is DisjointSet generalized to an arbitrary comparable key
// instead of a dense integer range. This is the "generic variant" spec.md
// section 3 calls for, expressed the way this corpus expresses genericity: a
// comparable map key (any value usable as a Go map key: room names, tags,
// area pointers), not a Go type parameter — no repository in the retrieval
// pack, including the go1.25 and go1.26 ones, uses type parameters anywhere.
type KeyedDisjointSet struct {
	ids  map[interface{}]int
	keys []interface{}
	ds   *DisjointSet
}

// NewKeyedDisjointSet returns an empty KeyedDisjointSet. Keys are registered
// lazily on first use by MakeUnion, Find or InSameSet.
func NewKeyedDisjointSet() *KeyedDisjointSet {
	return &KeyedDisjointSet{ids: make(map[interface{}]int), ds: NewDisjointSet(0)}
}

func (kds *KeyedDisjointSet) idFor(k interface{}) int {
	if id, ok := kds.ids[k]; ok {
		return id
	}
	id := len(kds.keys)
	kds.ids[k] = id
	kds.keys = append(kds.keys, k)
	kds.ds.parents = append(kds.ds.parents, id)
	kds.ds.sizes = append(kds.ds.sizes, 1)
	kds.ds.count++
	return id
}

// OnJoin registers a callback fired exactly once per actual union, with the
// larger and smaller sets' representative keys.
func (kds *KeyedDisjointSet) OnJoin(fn func(larger, smaller interface{})) {
	kds.ds.OnJoin(func(largeID, smallID int) {
		fn(kds.keys[largeID], kds.keys[smallID])
	})
}

// Find returns the representative key for k's set.
func (kds *KeyedDisjointSet) Find(k interface{}) interface{} {
	return kds.keys[kds.ds.Find(kds.idFor(k))]
}

// InSameSet reports whether a and b are currently in the same set.
func (kds *KeyedDisjointSet) InSameSet(a, b interface{}) bool {
	return kds.ds.InSameSet(kds.idFor(a), kds.idFor(b))
}

// MakeUnion merges the sets containing a and b.
func (kds *KeyedDisjointSet) MakeUnion(a, b interface{}) {
	kds.ds.MakeUnion(kds.idFor(a), kds.idFor(b))
}

// Count returns the number of distinct sets remaining.
func (kds *KeyedDisjointSet) Count() int {
	return kds.ds.Count()
}
