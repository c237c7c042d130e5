package tracker

import (
	"sync"

	"github.com/julianstephens/habitgrid/internal/models"
)

// keyLocks hands out one mutex per completion key. Entries are dropped
// once no goroutine holds or waits on them.
type keyLocks struct {
	mu    sync.Mutex
	locks map[models.CompletionKey]*keyLock
}

type keyLock struct {
	sync.Mutex
	refs int
}

func (k *keyLocks) lock(key models.CompletionKey) (unlock func()) {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = map[models.CompletionKey]*keyLock{}
	}
	l, ok := k.locks[key]
	if !ok {
		l = &keyLock{}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}

func (k *keyLocks) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}
