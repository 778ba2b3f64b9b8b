package services

import (
	"context"
	"sync"
)

// AccountLocker is a keyed mutex over account ids. Calls for the same account
// run one at a time; calls for different accounts never wait on each other.
// Entries are dropped once nobody holds or waits for them.
type AccountLocker struct {
	mu    sync.Mutex
	locks map[uint]*accountLock
}

type accountLock struct {
	held chan struct{}
	refs int
}

func NewAccountLocker() *AccountLocker {
	return &AccountLocker{
		locks: make(map[uint]*accountLock),
	}
}

// Lock blocks until the account is free or ctx is done. The returned unlock
// func is idempotent.
func (l *AccountLocker) Lock(ctx context.Context, accountID uint) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.mu.Lock()
	entry, ok := l.locks[accountID]
	if !ok {
		entry = &accountLock{held: make(chan struct{}, 1)}
		l.locks[accountID] = entry
	}
	entry.refs++
	l.mu.Unlock()

	select {
	case entry.held <- struct{}{}:
	case <-ctx.Done():
		l.release(accountID, entry)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-entry.held
			l.release(accountID, entry)
		})
	}, nil
}

func (l *AccountLocker) release(accountID uint, entry *accountLock) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry.refs--
	if entry.refs == 0 {
		delete(l.locks, accountID)
	}
}

// Len returns the number of accounts currently held or awaited
func (l *AccountLocker) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
