package engine

import (
	"cmp"
	"slices"

	"github.com/lixenwraith/space-dozer/entity"
)

// cellIndex maps a cell to the entities of one kind standing on it.
// Buckets are kept in ascending ID order, which is also collection order
// since collections only ever append new entities and sweep preserves order.
type cellIndex map[entity.Position][]*entity.Entity

func (c cellIndex) insert(e *entity.Entity) {
	bucket := c[e.Pos]
	i, _ := slices.BinarySearchFunc(bucket, e.ID, func(o *entity.Entity, id entity.ID) int {
		return cmp.Compare(o.ID, id)
	})
	c[e.Pos] = slices.Insert(bucket, i, e)
}

func (c cellIndex) remove(e *entity.Entity) {
	bucket := c[e.Pos]
	i := slices.Index(bucket, e)
	if i < 0 {
		return
	}
	bucket = slices.Delete(bucket, i, i+1)
	if len(bucket) == 0 {
		delete(c, e.Pos)
		return
	}
	c[e.Pos] = bucket
}

// first returns the lowest-ID live entity at pos other than skip
func (c cellIndex) first(pos entity.Position, skip entity.ID) *entity.Entity {
	for _, e := range c[pos] {
		if e.ID != skip && e.Alive() {
			return e
		}
	}
	return nil
}
