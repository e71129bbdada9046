package xmutex

import (
	"testing"

	"github.com/omeyang/xsync/pkg/sync/xpark"
)

func BenchmarkUncontended(b *testing.B) {
	b.Run("facade", func(b *testing.B) {
		var m Mutex
		for b.Loop() {
			m.Lock()
			m.Unlock()
		}
	})
	b.Run("generic", func(b *testing.B) {
		var m GenericMutex
		for b.Loop() {
			m.Lock()
			m.Unlock()
		}
	})
	b.Run("native", func(b *testing.B) {
		var m NativeMutex
		for b.Loop() {
			m.Lock()
			m.Unlock()
		}
	})
	b.Run("debug-generic", func(b *testing.B) {
		var m DebugMutex[GenericMutex, *GenericMutex]
		for b.Loop() {
			m.Lock()
			m.Unlock()
		}
	})
}

func BenchmarkContended(b *testing.B) {
	cases := []struct {
		name string
		m    Backend
	}{
		{"generic", new(GenericMutex)},
		{"parklot", new(WaitMutex[xpark.Lot])},
		{"native", new(NativeMutex)},
		{"rwexclusive", new(ExclusiveRWMutex)},
	}
	for _, bc := range cases {
		b.Run(bc.name, func(b *testing.B) {
			var shared int
			b.RunParallel(func(pb *testing.PB) {
				for pb.Next() {
					bc.m.Lock()
					shared++
					bc.m.Unlock()
				}
			})
			_ = shared
		})
	}
}
