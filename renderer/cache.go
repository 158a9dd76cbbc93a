package renderer

import (
	"reflect"
	"sync"
)

// A Cache holds one Registry per resource type.
//
// The zero value is not usable; construct one with NewCache.
type Cache struct {
	overrides Overrides
	entries   sync.Map
}

type cacheEntry struct {
	once sync.Once
	reg  *Registry
}

// NewCache constructs a Cache whose Registries are built with the global overrides.
// The table is copied; later changes to it do not reach the Cache.
func NewCache(overrides Overrides) *Cache {
	cp := make(Overrides, len(overrides))
	for k, v := range overrides {
		cp[k] = v
	}

	return &Cache{overrides: cp}
}

// Registry returns the Registry for the concrete type of res,
// building it from res on first use.
//
// Concurrent first calls for one type all wait on a single build and receive the same Registry.
func (c *Cache) Registry(res Resource) *Registry {
	v, _ := c.entries.LoadOrStore(reflect.TypeOf(res), new(cacheEntry))
	entry := v.(*cacheEntry)
	entry.once.Do(func() {
		entry.reg = Build(res, c.overrides)
	})

	return entry.reg
}

// Overrides returns a copy of the global overrides.
func (c *Cache) Overrides() Overrides {
	cp := make(Overrides, len(c.overrides))
	for k, v := range c.overrides {
		cp[k] = v
	}

	return cp
}
