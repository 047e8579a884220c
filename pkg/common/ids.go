package common

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	idNode *snowflake.Node
	idOnce sync.Once
)

func node() *snowflake.Node {
	idOnce.Do(func() {
		n, err := snowflake.NewNode(1)
		if err != nil {
			panic(err)
		}
		idNode = n
	})
	return idNode
}

// UUIDint64 returns a time-ordered unique int64.
func UUIDint64() int64 {
	return node().Generate().Int64()
}

// NewID returns a time-ordered unique id in decimal string form, used as the
// caller-supplied entity id across the store.
func NewID() string {
	return node().Generate().String()
}
