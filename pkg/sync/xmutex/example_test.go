//go:build !xmutex_single

package xmutex_test

import (
	"fmt"
	"sync"

	"github.com/omeyang/xsync/pkg/sync/xmutex"
)

func ExampleMutex() {
	var (
		mu    xmutex.Mutex
		total int
		wg    sync.WaitGroup
	)
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 1000 {
				mu.Lock()
				total++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	fmt.Println(total)
	// Output:
	// 4000
}

func ExampleMutex_TryLock() {
	var mu xmutex.Mutex
	fmt.Println(mu.TryLock())
	fmt.Println(mu.TryLock())
	mu.Unlock()
	fmt.Println(mu.TryLock())
	mu.Unlock()
	// Output:
	// true
	// false
	// true
}

func ExampleDebugMutex() {
	var mu xmutex.DebugMutex[xmutex.NativeMutex, *xmutex.NativeMutex]
	mu.Lock()
	fmt.Println(mu.Owner() != 0)
	mu.Unlock()
	fmt.Println(mu.Owner())
	// Output:
	// true
	// 0
}
