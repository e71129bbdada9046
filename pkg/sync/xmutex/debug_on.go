//go:build xmutex_debug && !xmutex_single

package xmutex

// DebugEnabled 表示 Mutex 是否包装了 DebugMutex。
const DebugEnabled = true

type impl = DebugMutex[backend, *backend]
