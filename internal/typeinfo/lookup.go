package typeinfo

import "golang.org/x/tools/go/types/typeutil"

// Index maps types to values by type identity. Identical types, including
// aliases of each other, share one entry.
type Index[V any] struct {
	m typeutil.Map
}

// NewIndex creates a new [Index].
func NewIndex[V any]() *Index[V] {
	idx := &Index[V]{}
	idx.m.SetHasher(typeutil.MakeHasher())
	return idx
}

// Put associates v with the type unless an identical type has already been
// put. It returns the previous value and false in that case.
func (idx *Index[V]) Put(t Type, v V) (V, bool) {
	if old, ok := idx.m.At(t.T).(V); ok {
		return old, false
	}
	idx.m.Set(t.T, v)
	return *new(V), true
}
