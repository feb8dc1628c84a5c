package dimension

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestLockManager(t *testing.T) {
	lm := newLockManager()

	t.Run("ReadsShareTheLock", func(t *testing.T) {
		// every reader waits for all the others while holding the lock
		const readers = 4
		var arrived sync.WaitGroup
		arrived.Add(readers)

		done := make(chan struct{})
		go func() {
			var wg sync.WaitGroup
			for i := 0; i < readers; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					_ = lm.execute(readOperation, func() error {
						arrived.Done()
						arrived.Wait()
						return nil
					})
				}()
			}
			wg.Wait()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("readers did not hold the lock concurrently")
		}
	})

	t.Run("WriteBlocksReads", func(t *testing.T) {
		writeStarted := make(chan struct{})
		releaseWrite := make(chan struct{})
		readDone := make(chan struct{})

		go func() {
			_ = lm.execute(writeOperation, func() error {
				close(writeStarted)
				<-releaseWrite
				return nil
			})
		}()
		<-writeStarted

		go func() {
			_ = lm.execute(readOperation, func() error { return nil })
			close(readDone)
		}()

		select {
		case <-readDone:
			t.Fatal("read ran while a write held the lock")
		case <-time.After(25 * time.Millisecond):
		}

		close(releaseWrite)
		select {
		case <-readDone:
		case <-time.After(2 * time.Second):
			t.Fatal("read did not run after the write finished")
		}
	})

	t.Run("ErrorsPropagate", func(t *testing.T) {
		sentinel := errors.New("boom")
		if err := lm.execute(writeOperation, func() error { return sentinel }); !errors.Is(err, sentinel) {
			t.Errorf("got %v, want %v", err, sentinel)
		}

		n, err := executeWithResult(lm, readOperation, func() (int, error) { return 42, nil })
		if err != nil || n != 42 {
			t.Errorf("got (%d, %v), want (42, nil)", n, err)
		}
	})

	t.Run("ReleasedAfterPanic", func(t *testing.T) {
		func() {
			defer func() { _ = recover() }()
			_ = lm.execute(writeOperation, func() error { panic("declare failed") })
		}()

		done := make(chan struct{})
		go func() {
			_ = lm.execute(writeOperation, func() error { return nil })
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("lock still held after a panic")
		}
	})
}
