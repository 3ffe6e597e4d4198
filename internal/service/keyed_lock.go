package service

import "sync"

// keyedLock 按 key 串行化操作；同一买家的加购与结账共用一把锁
type keyedLock struct {
	mu sync.Map // key -> *sync.Mutex
}

func (l *keyedLock) Lock(key int64) func() {
	v, _ := l.mu.LoadOrStore(key, &sync.Mutex{})
	m := v.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}

// BuyerLocks 全部买家级互斥锁的共享实例
type BuyerLocks = keyedLock

func NewBuyerLocks() *BuyerLocks { return &keyedLock{} }
