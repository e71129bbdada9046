package xpark

import "errors"

// ErrInvalidShardCount 表示分片数不合法（必须为 2 的幂，且不超过上限）。
var ErrInvalidShardCount = errors.New("xpark: invalid shard count")
