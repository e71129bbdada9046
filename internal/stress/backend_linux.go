package stress

import (
	"github.com/omeyang/xsync/pkg/sync/xmutex"
	"github.com/omeyang/xsync/pkg/sync/xpark"
)

func platformBackends() map[string]Factory {
	return map[string]Factory{
		"futex":               func() xmutex.Backend { return new(xmutex.WaitMutex[xpark.Futex]) },
		DebugPrefix + "futex": func() xmutex.Backend { return new(xmutex.DebugMutex[xmutex.WaitMutex[xpark.Futex], *xmutex.WaitMutex[xpark.Futex]]) },
	}
}
