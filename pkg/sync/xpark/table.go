package xpark

import (
	"encoding/binary"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/cespare/xxhash/v2"
)

// Table 是按地址分片的停车场。
// 每个地址对应一个 FIFO 等待队列，队列元素是 size=1 的 channel：
//   - 接收阻塞 = 休眠
//   - 发送 = 唤醒（缓冲为 1，发送方永不阻塞）
//
// Table 必须通过 [New] 创建。
type Table struct {
	shards []shard
	mask   uint64
	// addrCount 是当前有等待者的地址数量。
	addrCount atomic.Int64
}

type shard struct {
	mu     sync.Mutex
	queues map[uintptr]*queue
}

type queue struct {
	waiters []chan struct{}
}

// signalPool 复用唤醒 channel。被唤醒方收到信号后 channel 为空，可直接归还。
var signalPool = sync.Pool{
	New: func() any {
		return make(chan struct{}, 1)
	},
}

// New 创建一个新的 Table。
// 配置无效时返回错误（如分片数不是 2 的幂）。
func New(opts ...Option) (*Table, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	return newTable(o), nil
}

func newTable(o options) *Table {
	shards := make([]shard, o.shardCount)
	for i := range shards {
		shards[i].queues = make(map[uintptr]*queue)
	}
	// shardCount 已验证为 [1, 65536] 内的 2 的幂，int→uint64 安全。
	return &Table{
		shards: shards,
		mask:   uint64(o.shardCount - 1),
	}
}

// keyOf 以地址作为键。堆对象不会被 GC 移动，地址在对象存活期间稳定。
func keyOf(addr *atomic.Uint32) uintptr {
	return uintptr(unsafe.Pointer(addr))
}

func (t *Table) shardOf(key uintptr) *shard {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(key))
	return &t.shards[xxhash.Sum64(b[:])&t.mask]
}

// Wait 见 [Parker.Wait]。
func (t *Table) Wait(addr *atomic.Uint32, expect uint32) {
	key := keyOf(addr)
	s := t.shardOf(key)

	s.mu.Lock()
	if addr.Load() != expect {
		s.mu.Unlock()
		return
	}
	q, ok := s.queues[key]
	if !ok {
		q = &queue{}
		s.queues[key] = q
		t.addrCount.Add(1)
	}
	ch, _ := signalPool.Get().(chan struct{})
	if ch == nil {
		ch = make(chan struct{}, 1)
	}
	q.waiters = append(q.waiters, ch)
	s.mu.Unlock()

	<-ch
	signalPool.Put(ch)
}

// Wake 见 [Parker.Wake]。按入队顺序唤醒。
func (t *Table) Wake(addr *atomic.Uint32, n int) {
	if n <= 0 {
		return
	}
	key := keyOf(addr)
	s := t.shardOf(key)

	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.queues[key]
	if !ok {
		return
	}
	k := min(n, len(q.waiters))
	for i := range k {
		q.waiters[i] <- struct{}{}
		q.waiters[i] = nil
	}
	q.waiters = q.waiters[k:]
	if len(q.waiters) == 0 {
		delete(s.queues, key)
		t.addrCount.Add(-1)
	}
}

// Parked 返回休眠在 addr 上的调用方数量（瞬时快照，仅用于调试和测试）。
func (t *Table) Parked(addr *atomic.Uint32) int {
	key := keyOf(addr)
	s := t.shardOf(key)

	s.mu.Lock()
	defer s.mu.Unlock()
	if q, ok := s.queues[key]; ok {
		return len(q.waiters)
	}
	return 0
}

// Len 返回当前有等待者的地址数量（单次原子读取，瞬时快照）。
func (t *Table) Len() int {
	return int(max(t.addrCount.Load(), 0))
}
