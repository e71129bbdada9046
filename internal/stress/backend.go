package stress

import (
	"fmt"
	"slices"
	"strings"

	"github.com/omeyang/xsync/pkg/sync/xmutex"
	"github.com/omeyang/xsync/pkg/sync/xpark"
)

// DebugPrefix 为后端名称加上该前缀得到其 DebugMutex 变体。
const DebugPrefix = "debug-"

// Factory 创建一个未加锁的后端实例。
type Factory func() xmutex.Backend

// tableShards 是 "table" 后端私有停车表的分片数。
const tableShards = 8

var registry = map[string]Factory{
	"native":      func() xmutex.Backend { return new(xmutex.NativeMutex) },
	"rwexclusive": func() xmutex.Backend { return new(xmutex.ExclusiveRWMutex) },
	"generic":     func() xmutex.Backend { return new(xmutex.GenericMutex) },
	"parklot":     func() xmutex.Backend { return new(xmutex.WaitMutex[xpark.Lot]) },
	"table":       newTableMutex,

	DebugPrefix + "native":      func() xmutex.Backend { return new(xmutex.DebugMutex[xmutex.NativeMutex, *xmutex.NativeMutex]) },
	DebugPrefix + "rwexclusive": func() xmutex.Backend { return new(xmutex.DebugMutex[xmutex.ExclusiveRWMutex, *xmutex.ExclusiveRWMutex]) },
	DebugPrefix + "generic":     func() xmutex.Backend { return new(xmutex.DebugMutex[xmutex.GenericMutex, *xmutex.GenericMutex]) },
	DebugPrefix + "parklot":     func() xmutex.Backend { return new(xmutex.DebugMutex[xmutex.WaitMutex[xpark.Lot], *xmutex.WaitMutex[xpark.Lot]]) },
}

// FacadeBackend 是编译期选定的 xmutex.Mutex 的注册名。
// 单上下文构建中 Mutex 无法阻塞，不注册。
const FacadeBackend = "mutex"

func init() {
	for name, f := range platformBackends() {
		registry[name] = f
	}
	if xmutex.BackendName != "single" {
		registry[FacadeBackend] = func() xmutex.Backend { return new(xmutex.Mutex) }
	}
}

func newTableMutex() xmutex.Backend {
	t, err := xpark.New(xpark.WithShardCount(tableShards))
	if err != nil {
		panic(fmt.Sprintf("stress: table backend: %v", err))
	}
	return xmutex.NewWaitMutex(t)
}

// Backends 返回所有已注册的后端名称，按字典序排列。
func Backends() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup 返回名称对应的工厂函数。
func Lookup(name string) (Factory, error) {
	f, ok := registry[strings.TrimSpace(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
	return f, nil
}

// IsDebug 报告名称是否为 DebugMutex 变体。
func IsDebug(name string) bool {
	return strings.HasPrefix(name, DebugPrefix)
}
