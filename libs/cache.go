package libs

import (
	"slices"
	"sync"
	"time"

	"github.com/SteadBytes/bisection/libs/bisect"
)

// TimeIndex keeps, per key, a list of timestamps sorted oldest first.
type TimeIndex struct {
	sync.RWMutex
	cm map[string][]time.Time
}

func NewTimeIndex() *TimeIndex {
	return &TimeIndex{cm: make(map[string][]time.Time)}
}

func before(a, b time.Time) bool {
	return a.Before(b)
}

// Append records value under key. Equal timestamps keep arrival order.
func (c *TimeIndex) Append(key string, value time.Time) {
	c.Lock()
	defer c.Unlock()

	v := c.cm[key]
	bisect.InsortRightFunc(&v, value, before)
	c.cm[key] = v
}

func (c *TimeIndex) WriteCache(m map[string]time.Time) {
	for k, v := range m {
		c.Append(k, v)
	}
}

func (c *TimeIndex) Get(key string) ([]time.Time, bool) {
	c.RLock()
	defer c.RUnlock()

	v, ok := c.cm[key]
	if !ok {
		return nil, false
	}
	return append([]time.Time(nil), v...), true
}

// Between returns the timestamps of key in [from, to).
func (c *TimeIndex) Between(key string, from, to time.Time) []time.Time {
	c.RLock()
	defer c.RUnlock()

	v := c.cm[key]
	lo := bisect.BisectLeftFunc(v, from, before)
	hi, err := bisect.BisectLeftRangeFunc(v, to, lo, len(v), before)
	if err != nil {
		return nil
	}
	return append([]time.Time(nil), v[lo:hi]...)
}

// Latest returns the newest timestamp recorded for key.
func (c *TimeIndex) Latest(key string) (time.Time, bool) {
	c.RLock()
	defer c.RUnlock()

	v := c.cm[key]
	if len(v) == 0 {
		return time.Time{}, false
	}
	return v[len(v)-1], true
}

// Expire drops every timestamp older than cutoff and forgets keys left
// empty.
func (c *TimeIndex) Expire(cutoff time.Time) {
	c.Lock()
	defer c.Unlock()

	for k, v := range c.cm {
		i := bisect.BisectLeftFunc(v, cutoff, before)
		if i == len(v) {
			delete(c.cm, k)
			continue
		}
		c.cm[k] = slices.Clone(v[i:])
	}
}

func (c *TimeIndex) Delete(key string) {
	c.Lock()
	defer c.Unlock()
	delete(c.cm, key)
}

func (c *TimeIndex) Len() int {
	c.RLock()
	defer c.RUnlock()
	return len(c.cm)
}

func (c *TimeIndex) ClearAll() {
	c.Lock()
	defer c.Unlock()

	for k := range c.cm {
		delete(c.cm, k)
	}
}

// ForEach stops when fn returns false.
func (c *TimeIndex) ForEach(fn func(k string, v []time.Time) bool) {
	c.RLock()
	defer c.RUnlock()

	for k, v := range c.cm {
		if ok := fn(k, v); !ok {
			return
		}
	}
}
