package codecutil

import (
	"github.com/indigo-web/contentcoding"
	"github.com/indigo-web/contentcoding/codec"
)

type slot struct {
	codec     codec.Codec
	instances []codec.Instance
	used      int
}

// Cache hands out codec instances, instantiating them lazily. A coding may be applied
// more than once, therefore every Get returns a distinct instance until Release is called.
// After that, all the instances are handed out again.
type Cache struct {
	registry *codec.Registry
	slots    []slot
}

func NewCache(registry *codec.Registry) *Cache {
	return &Cache{
		registry: registry,
	}
}

// Get returns an instance serving the layer. Identity and layers without codec result
// in false.
func (c *Cache) Get(layer contentcoding.Encoding) (codec.Instance, bool) {
	cd, found := c.registry.Lookup(layer)
	if !found {
		return nil, false
	}

	s := c.slot(cd)
	if s.used == len(s.instances) {
		s.instances = append(s.instances, cd.New())
	}

	inst := s.instances[s.used]
	s.used++

	return inst, true
}

func (c *Cache) slot(cd codec.Codec) *slot {
	// aliases resolve to the same codec, so slots are distinguished by the primary token
	token := cd.Token()
	for i := range c.slots {
		if c.slots[i].codec.Token() == token {
			return &c.slots[i]
		}
	}

	c.slots = append(c.slots, slot{codec: cd})
	return &c.slots[len(c.slots)-1]
}

// Release marks all the instances as free to be handed out again.
func (c *Cache) Release() {
	for i := range c.slots {
		c.slots[i].used = 0
	}
}
