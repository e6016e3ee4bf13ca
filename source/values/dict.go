package values

import (
	"math/rand"

	"src.elv.sh/pkg/persistent/vector"
)

// A Dict maps strings to values and remembers the order in which keys were first added,
// which is the order they're displayed in. Like lists, dicts are persistent: Set returns a
// new Dict and leaves the old one alone.
type Dict struct {
	keys vector.Vector
	root *mapNode
}

func NewDict() Dict {
	return Dict{keys: vector.Empty}
}

func (d Dict) Len() int {
	if d.keys == nil {
		return 0
	}
	return d.keys.Len()
}

// Setting an existing key replaces its value but keeps its position.
func (d Dict) Set(key string, value Value) Dict {
	if d.keys == nil {
		d = NewDict()
	}
	keys := d.keys
	if _, ok := d.Get(key); !ok {
		keys = keys.Conj(key)
	}
	return Dict{keys: keys, root: union(d.root, newNode(key, value), true)}
}

// Get returns the map value associated with the specified key.
// The ok result indicates whether an entry was found in the map.
func (d Dict) Get(key string) (Value, bool) {
	node := d.root
	for node != nil {
		if key < node.key {
			node = node.left
		} else if node.key < key {
			node = node.right
		} else {
			return node.value, true
		}
	}
	return Value{}, false
}

// Range calls f on each entry in insertion order until f returns false.
func (d Dict) Range(f func(key string, value Value) bool) {
	if d.keys == nil {
		return
	}
	for it := d.keys.Iterator(); it.HasElem(); it.Next() {
		key := it.Elem().(string)
		value, _ := d.Get(key)
		if !f(key, value) {
			return
		}
	}
}

func (d Dict) Keys() []string {
	result := []string{}
	d.Range(func(key string, _ Value) bool {
		result = append(result, key)
		return true
	})
	return result
}

// The index is a treap, ordered on the keys and heap-ordered on random weights.

type mapNode struct {
	key         string
	value       Value
	weight      uint64
	left, right *mapNode
}

func newNode(key string, value Value) *mapNode {
	return &mapNode{
		key:    key,
		value:  value,
		weight: rand.Uint64(),
	}
}

func (node *mapNode) shallowClone() *mapNode {
	return &mapNode{
		key:    node.key,
		value:  node.value,
		weight: node.weight,
	}
}

// union returns a new tree which is a union of first and second one.
// If overwrite is set to true, second one would override a value for any duplicate keys.
func union(first, second *mapNode, overwrite bool) *mapNode {
	if first == nil {
		return second
	}
	if second == nil {
		return first
	}
	if first.weight < second.weight {
		second, first, overwrite = first, second, !overwrite
	}
	left, mid, right := split(second, first.key)
	var result *mapNode
	if overwrite && mid != nil {
		result = mid.shallowClone()
	} else {
		result = first.shallowClone()
	}
	result.weight = first.weight
	result.left = union(first.left, left, overwrite)
	result.right = union(first.right, right, overwrite)
	return result
}

// split the tree midway by the key into three new ones: left with all nodes with keys
// smaller than key, mid with the node matching the key, right with all nodes larger than
// key. If there are no nodes in one of trees, it is nil.
func split(n *mapNode, key string) (left, mid, right *mapNode) {
	if n == nil {
		return nil, nil, nil
	}
	if n.key < key {
		left, mid, right := split(n.right, key)
		newN := n.shallowClone()
		newN.left = n.left
		newN.right = left
		return newN, mid, right
	} else if key < n.key {
		left, mid, right := split(n.left, key)
		newN := n.shallowClone()
		newN.left = right
		newN.right = n.right
		return left, mid, newN
	}
	mid = n.shallowClone()
	return n.left, mid, n.right
}
