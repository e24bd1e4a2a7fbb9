package job

import (
	"fmt"
	"hash/fnv"
)

// ShardLabel hashes an upload key (the local file path) to a stable
// small-cardinality label (0-31) for per-shard metrics.
func ShardLabel(key string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return fmt.Sprintf("%d", h.Sum32()%32)
}
