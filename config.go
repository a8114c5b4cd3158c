package rtree

import (
	"errors"
	"fmt"
	"unsafe"
)

const (
	// PageSize is the node size the default fanout is derived from.
	PageSize = 4096

	// DefaultMaxChildren is the number of branches that fit into a page
	// alongside a node's count and level.
	DefaultMaxChildren = (PageSize - 2*int(unsafe.Sizeof(int(0)))) / int(unsafe.Sizeof(Branch{}))
)

// Config holds the fanout limits of a tree. It is fixed for the lifetime of
// the tree: every node keeps a pointer to the Config it was created with.
type Config struct {
	nodeMax int
	leafMax int
}

// NewConfig creates a configuration with the given maximum number of
// branches for internal nodes and leaf nodes.
func NewConfig(nodeMax, leafMax int) (Config, error) {
	if nodeMax < 2 {
		return Config{}, fmt.Errorf("node max must be at least 2, got %d", nodeMax)
	}
	if leafMax < 2 {
		return Config{}, fmt.Errorf("leaf max must be at least 2, got %d", leafMax)
	}
	return Config{nodeMax: nodeMax, leafMax: leafMax}, nil
}

// DefaultConfig uses DefaultMaxChildren for both kinds of node.
func DefaultConfig() Config {
	return Config{nodeMax: DefaultMaxChildren, leafMax: DefaultMaxChildren}
}

var errZeroConfig = errors.New("config has no fanout, use NewConfig or DefaultConfig")

func (c Config) validate() error {
	if c.nodeMax == 0 && c.leafMax == 0 {
		return errZeroConfig
	}
	_, err := NewConfig(c.nodeMax, c.leafMax)
	return err
}

// NodeMax is the maximum number of branches in an internal node.
func (c Config) NodeMax() int { return c.nodeMax }

// LeafMax is the maximum number of branches in a leaf node.
func (c Config) LeafMax() int { return c.leafMax }

// MinNodeFill is the minimum number of branches in a non-root internal node.
func (c Config) MinNodeFill() int { return c.nodeMax / 2 }

// MinLeafFill is the minimum number of branches in a non-root leaf node.
func (c Config) MinLeafFill() int { return c.leafMax / 2 }

func (c Config) maxKids(level int) int {
	if level > 0 {
		return c.nodeMax
	}
	return c.leafMax
}

func (c Config) minFill(level int) int {
	if level > 0 {
		return c.MinNodeFill()
	}
	return c.MinLeafFill()
}

func (c Config) slots() int {
	if c.nodeMax > c.leafMax {
		return c.nodeMax
	}
	return c.leafMax
}
