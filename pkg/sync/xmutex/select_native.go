//go:build !xmutex_single && (xmutex_native || windows || darwin || ios)

package xmutex

// BackendName 是编译期选定的后端名称。
const BackendName = "native"

type backend = NativeMutex
