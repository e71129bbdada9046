//go:build xmutex_single

package xmutex

// BackendName 是编译期选定的后端名称。
const BackendName = "single"

type backend = SingleMutex
