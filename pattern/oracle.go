package pattern

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Oracle answers which pattern a guess produces against a target.
type Oracle interface {
	Pattern(guess, target string) Pattern
}

// Direct computes every pattern from scratch.
type Direct struct{}

func (Direct) Pattern(guess, target string) Pattern {
	return Compute(guess, target)
}

// key is a guess followed by a target.
type key [2 * WordLen]byte

func makeKey(guess, target string) key {
	var k key
	copy(k[:WordLen], guess)
	copy(k[WordLen:], target)
	return k
}

// Cache memoizes Compute keyed by guess and target. It is safe for
// concurrent use; two goroutines racing on the same key store the same value.
type Cache struct {
	mu       sync.RWMutex
	patterns map[key]Pattern
}

func NewCache() *Cache {
	return &Cache{patterns: map[key]Pattern{}}
}

func (c *Cache) Pattern(guess, target string) Pattern {
	k := makeKey(guess, target)
	c.mu.RLock()
	p, ok := c.patterns[k]
	c.mu.RUnlock()
	if ok {
		return p
	}

	p = Compute(guess, target)
	c.mu.Lock()
	c.patterns[k] = p
	c.mu.Unlock()
	return p
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.patterns)
}

// Load fills the cache from a gob snapshot written by Save. A missing file is
// not an error.
func (c *Cache) Load(path string) error {
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug().Str("path", path).Msg("pattern cache file not found, will calculate from scratch")
		return nil
	}
	if err != nil {
		return fmt.Errorf("open pattern cache: %w", err)
	}
	defer file.Close()

	start := time.Now()

	var patterns map[key]Pattern
	if err := gob.NewDecoder(file).Decode(&patterns); err != nil {
		return fmt.Errorf("decode pattern cache: %w", err)
	}

	c.mu.Lock()
	for k, p := range patterns {
		c.patterns[k] = p
	}
	c.mu.Unlock()

	log.Debug().Int("entries", len(patterns)).Dur("took", time.Since(start)).Msg("loaded pattern cache")
	return nil
}

func (c *Cache) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create pattern cache: %w", err)
	}
	defer file.Close()

	start := time.Now()

	c.mu.RLock()
	err = gob.NewEncoder(file).Encode(c.patterns)
	c.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("encode pattern cache: %w", err)
	}

	log.Debug().Int("entries", c.Len()).Dur("took", time.Since(start)).Msg("saved pattern cache")
	return nil
}
