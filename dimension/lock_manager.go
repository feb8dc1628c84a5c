package dimension

import (
	"sync"
)

// operationType defines whether a registry operation reads or writes.
// Reads share the lock; writes hold it exclusively.
type operationType int

const (
	// readOperation only inspects registered dimensions
	readOperation operationType = iota

	// writeOperation declares new dimensions
	writeOperation
)

// lockManager centralizes the locking strategy of a Registry so every
// method takes the right kind of lock and releases it on return.
type lockManager struct {
	mu *sync.RWMutex
}

// newLockManager creates a lock manager ready for concurrent use
func newLockManager() *lockManager {
	return &lockManager{
		mu: &sync.RWMutex{},
	}
}

// execute runs fn holding a read or write lock according to opType.
// The lock is released via defer, also when fn panics.
func (lm *lockManager) execute(opType operationType, fn func() error) error {
	switch opType {
	case readOperation:
		lm.mu.RLock()
		defer lm.mu.RUnlock()
	case writeOperation:
		lm.mu.Lock()
		defer lm.mu.Unlock()
	}
	return fn()
}

// executeWithResult is execute for functions that produce a value.
//
// Example:
//
//	d, err := executeWithResult(r.locks, readOperation, func() (Dimension, error) {
//	    return r.lookupLocked(name)
//	})
func executeWithResult[T any](lm *lockManager, opType operationType, fn func() (T, error)) (T, error) {
	var result T
	err := lm.execute(opType, func() error {
		var err error
		result, err = fn()
		return err
	})
	return result, err
}
