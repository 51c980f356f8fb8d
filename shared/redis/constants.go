// shared/redis/constants.go
package redis

import "fmt"

const (
	// AdminStatsKey holds the cached admin stats snapshot as JSON.
	AdminStatsKey = "admin:stats"
)

// ErrRedisKeyNotFound is returned when a looked-up key does not exist.
var ErrRedisKeyNotFound = fmt.Errorf("redis key not found")
