package config

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Kind tags a node of the parsed configuration tree.
type Kind int

const (
	KindNull Kind = iota
	KindTable
	KindArray
	KindString
	KindInteger
	KindFloat
	KindBool
	KindDatetime
)

func (k Kind) String() string {
	switch k {
	case KindTable:
		return "table"
	case KindArray:
		return "array"
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "boolean"
	case KindDatetime:
		return "datetime"
	default:
		return "null"
	}
}

// Node is the untyped intermediate form every configuration source is parsed
// into before validation. Exactly one payload field is meaningful, selected
// by Kind.
type Node struct {
	Kind  Kind
	Table map[string]*Node
	Items []*Node
	Str   string
	Int   int64
	Float float64
	Bool  bool
	Time  time.Time
}

// Keys returns the table keys in sorted order so validation output is stable.
func (n *Node) Keys() []string {
	keys := make([]string, 0, len(n.Table))
	for k := range n.Table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the child named key of a table node.
func (n *Node) Get(key string) (*Node, bool) {
	if n == nil || n.Kind != KindTable {
		return nil, false
	}
	child, ok := n.Table[key]
	return child, ok
}

// Set stores child under key, turning n into a table if needed.
func (n *Node) Set(key string, child *Node) {
	if n.Kind != KindTable || n.Table == nil {
		n.Kind = KindTable
		n.Table = make(map[string]*Node)
	}
	n.Table[key] = child
}

// Value converts the node back into plain Go values.
func (n *Node) Value() any {
	switch n.Kind {
	case KindTable:
		out := make(map[string]any, len(n.Table))
		for k, v := range n.Table {
			out[k] = v.Value()
		}
		return out
	case KindArray:
		out := make([]any, len(n.Items))
		for i, v := range n.Items {
			out[i] = v.Value()
		}
		return out
	case KindString:
		return n.Str
	case KindInteger:
		return n.Int
	case KindFloat:
		return n.Float
	case KindBool:
		return n.Bool
	case KindDatetime:
		return n.Time
	default:
		return nil
	}
}

func newTable() *Node {
	return &Node{Kind: KindTable, Table: make(map[string]*Node)}
}

func stringNode(s string) *Node { return &Node{Kind: KindString, Str: s} }

func intNode(i int64) *Node { return &Node{Kind: KindInteger, Int: i} }

// buildTree converts decoder output (TOML or YAML) into a Node tree.
func buildTree(v any) (*Node, error) {
	switch t := v.(type) {
	case nil:
		return &Node{Kind: KindNull}, nil
	case map[string]any:
		n := newTable()
		for k, child := range t {
			c, err := buildTree(child)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			n.Table[k] = c
		}
		return n, nil
	case map[any]any:
		n := newTable()
		for k, child := range t {
			key := fmt.Sprint(k)
			c, err := buildTree(child)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			n.Table[key] = c
		}
		return n, nil
	case []map[string]any:
		n := &Node{Kind: KindArray, Items: make([]*Node, 0, len(t))}
		for i, child := range t {
			c, err := buildTree(child)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			n.Items = append(n.Items, c)
		}
		return n, nil
	case []any:
		n := &Node{Kind: KindArray, Items: make([]*Node, 0, len(t))}
		for i, child := range t {
			c, err := buildTree(child)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			n.Items = append(n.Items, c)
		}
		return n, nil
	case string:
		return stringNode(t), nil
	case bool:
		return &Node{Kind: KindBool, Bool: t}, nil
	case int:
		return intNode(int64(t)), nil
	case int8:
		return intNode(int64(t)), nil
	case int16:
		return intNode(int64(t)), nil
	case int32:
		return intNode(int64(t)), nil
	case int64:
		return intNode(t), nil
	case uint:
		return uintNode(uint64(t))
	case uint8:
		return intNode(int64(t)), nil
	case uint16:
		return intNode(int64(t)), nil
	case uint32:
		return intNode(int64(t)), nil
	case uint64:
		return uintNode(t)
	case float32:
		return &Node{Kind: KindFloat, Float: float64(t)}, nil
	case float64:
		return &Node{Kind: KindFloat, Float: t}, nil
	case time.Time:
		return &Node{Kind: KindDatetime, Time: t}, nil
	default:
		return nil, fmt.Errorf("unsupported value of type %T", v)
	}
}

func uintNode(u uint64) (*Node, error) {
	if u > math.MaxInt64 {
		return nil, fmt.Errorf("integer %d out of range", u)
	}
	return intNode(int64(u)), nil
}

func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

func indexPath(parent string, i int) string {
	return fmt.Sprintf("%s[%d]", parent, i)
}
