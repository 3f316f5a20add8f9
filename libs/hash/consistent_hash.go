package hash

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/SteadBytes/bisection/libs/bisect"
	"github.com/golang-collections/collections/set"
)

var (
	ErrEmptyRing  = errors.New("empty ring")
	ErrNodeExists = errors.New("node already on ring")
)

type ConsistentHash struct {
	sync.RWMutex
	// Nodes is read-only outside the ring; use AddNode, RemoveNode and Has.
	Nodes        *set.Set
	ReplicaCount int
	hashRing     Ring
}

type hashEntry struct {
	node     string
	position uint64
}

// Ring is kept sorted by position.
type Ring []hashEntry

func byPosition(a, b hashEntry) bool {
	return a.position < b.position
}

func computeRingPosition(key []byte) uint64 {
	sum := md5.Sum(key)
	pos, _ := strconv.ParseUint(hex.EncodeToString(sum[:])[:8], 16, 64)
	return pos
}

func (ch *ConsistentHash) AddNode(node string) error {
	ch.Lock()
	defer ch.Unlock()

	if ch.Nodes.Has(node) {
		return fmt.Errorf("%w: %s", ErrNodeExists, node)
	}

	ch.Nodes.Insert(node)
	for i := 0; i < ch.ReplicaCount; i++ {
		entry := hashEntry{
			node:     node,
			position: computeRingPosition([]byte(fmt.Sprintf("%s::%d", node, i))),
		}
		bisect.InsortRightFunc(&ch.hashRing, entry, byPosition)
	}
	return nil
}

func (ch *ConsistentHash) RemoveNode(node string) {
	ch.Lock()
	defer ch.Unlock()

	ch.Nodes.Remove(node)
	newRing := make(Ring, 0, len(ch.hashRing))
	for _, v := range ch.hashRing {
		if v.node != node {
			newRing = append(newRing, v)
		}
	}
	ch.hashRing = newRing
}

// GetNodes walks the ring clockwise from key's position and returns up to n
// distinct nodes. n <= 0 yields an empty result.
func (ch *ConsistentHash) GetNodes(key string, n int) ([]string, error) {
	ch.RLock()
	defer ch.RUnlock()

	ringLength := len(ch.hashRing)
	if ringLength < 1 {
		return nil, ErrEmptyRing
	}
	if n <= 0 {
		return []string{}, nil
	}

	searchEntry := hashEntry{position: computeRingPosition([]byte(key))}
	index := bisect.BisectLeftFunc(ch.hashRing, searchEntry, byPosition) % ringLength

	nodes, result := set.New(), make([]string, 0, n)
	for step := 0; step < ringLength && len(result) < n; step++ {
		entry := ch.hashRing[(index+step)%ringLength]
		if nodes.Has(entry.node) {
			continue
		}
		nodes.Insert(entry.node)
		result = append(result, entry.node)
	}
	return result, nil
}

func (ch *ConsistentHash) GetNode(key string) (string, error) {
	r, err := ch.GetNodes(key, 1)
	if err != nil {
		return "", err
	}
	return r[0], nil
}

func (ch *ConsistentHash) Has(node string) bool {
	ch.RLock()
	defer ch.RUnlock()
	return ch.Nodes.Has(node)
}

// Len returns the number of virtual nodes on the ring.
func (ch *ConsistentHash) Len() int {
	ch.RLock()
	defer ch.RUnlock()
	return len(ch.hashRing)
}

// NewConsistentHash builds a ring with replicaCount virtual nodes per node.
// Duplicate names in nodes are added once.
func NewConsistentHash(nodes []string, replicaCount int) *ConsistentHash {
	ch := &ConsistentHash{
		Nodes:        set.New(),
		ReplicaCount: replicaCount,
		hashRing:     make(Ring, 0, len(nodes)*replicaCount),
	}

	for _, v := range nodes {
		_ = ch.AddNode(v)
	}
	return ch
}
