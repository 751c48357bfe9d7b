package gen

// ItemList is an ordered list of arbitrary items plus a record of which
// step produced each one. Items are compared with ==, so callers storing
// pointer-typed items (e.g. *area.Area) get identity semantics and callers
// storing value types (e.g. dunegrid.Rectangle) get structural equality —
// either way, "no generics" texture is kept by storing interface{} and
// letting call sites type-assert on retrieval, the same way gen.Context
// resolves components by a type assertion rather than a type parameter.
type ItemList struct {
	items     []interface{}
	producers []string
}

// NewItemList returns an empty ItemList.
func NewItemList() *ItemList {
	return &ItemList{}
}

// Append adds item to the end of the list, recording producingStep as its
// origin.
func (l *ItemList) Append(item interface{}, producingStep string) {
	l.items = append(l.items, item)
	l.producers = append(l.producers, producingStep)
}

// Items returns the list's items in insertion order. The caller must not
// mutate the returned slice.
func (l *ItemList) Items() []interface{} {
	return l.items
}

// Len returns the number of items in the list.
func (l *ItemList) Len() int {
	return len(l.items)
}

// ProducerAt returns the producing-step name for the item at index i.
func (l *ItemList) ProducerAt(i int) string {
	return l.producers[i]
}

// RemoveIf removes every item satisfying pred, returning the count
// removed.
func (l *ItemList) RemoveIf(pred func(interface{}) bool) int {
	keptItems := l.items[:0]
	keptProducers := l.producers[:0]
	removed := 0
	for i, it := range l.items {
		if pred(it) {
			removed++
			continue
		}
		keptItems = append(keptItems, it)
		keptProducers = append(keptProducers, l.producers[i])
	}
	l.items = keptItems
	l.producers = keptProducers
	return removed
}

// RemoveValue removes the first item equal to v, returning true if one was
// found.
func (l *ItemList) RemoveValue(v interface{}) bool {
	found := false
	once := func(it interface{}) bool {
		if !found && it == v {
			found = true
			return true
		}
		return false
	}
	l.RemoveIf(once)
	return found
}
