package cache

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/domino14/reversi/config"
)

// The cache holds objects that are expensive to load and never change once
// loaded, such as weight tables read from disk. A long-running process
// (self-play, a server wrapping the engine) loads each one a single time.

type cache struct {
	sync.Mutex
	objects map[string]any
}

// LoadFunc builds the object for a key on a cache miss.
type LoadFunc func(cfg *config.Config, key string) (any, error)

// GlobalObjectCache is the process-wide cache.
var GlobalObjectCache *cache

var createOnce sync.Once

func (c *cache) load(cfg *config.Config, key string, loadFunc LoadFunc) (any, error) {
	log.Debug().Str("key", key).Msg("loading into cache")

	obj, err := loadFunc(cfg, key)
	if err != nil {
		return nil, err
	}
	c.objects[key] = obj
	return obj, nil
}

func (c *cache) get(cfg *config.Config, key string, loadFunc LoadFunc) (any, error) {
	c.Lock()
	defer c.Unlock()
	if obj, ok := c.objects[key]; ok {
		log.Debug().Str("key", key).Msg("getting obj from cache")
		return obj, nil
	}
	return c.load(cfg, key, loadFunc)
}

func (c *cache) evict(key string) {
	c.Lock()
	defer c.Unlock()
	delete(c.objects, key)
}

func CreateGlobalObjectCache() {
	createOnce.Do(func() {
		GlobalObjectCache = &cache{objects: make(map[string]any)}
	})
}

// Load returns the cached object for name, calling loadFunc to build it the
// first time. A failed load is not cached.
func Load(cfg *config.Config, name string, loadFunc LoadFunc) (any, error) {
	CreateGlobalObjectCache()
	return GlobalObjectCache.get(cfg, name, loadFunc)
}

// Evict drops a cached object so the next Load rebuilds it.
func Evict(name string) {
	CreateGlobalObjectCache()
	GlobalObjectCache.evict(name)
}
