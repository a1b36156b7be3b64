package fs

import (
	"os"
	"time"

	"go.trai.ch/outfit/internal/core/domain"
	"go.trai.ch/outfit/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Locker = (*Locker)(nil)

// DefaultLockTimeout bounds how long a second invocation waits for the models root.
const DefaultLockTimeout = 10 * time.Second

// Locker implements ports.Locker with an advisory lock file in the models root.
type Locker struct {
	Timeout time.Duration
}

// NewLocker creates a Locker that waits up to timeout for the lock.
func NewLocker(timeout time.Duration) *Locker {
	return &Locker{Timeout: timeout}
}

// Lock acquires the exclusive lock on root, polling with backoff until Timeout elapses.
func (l *Locker) Lock(root string) (func() error, error) {
	path := domain.LockPath(root)

	//nolint:gosec // lock file lives inside the resolved models root
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, domain.FilePerm)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLockFailed.Error()), "path", path)
	}

	deadline := time.Now().Add(l.Timeout)
	backoff := 10 * time.Millisecond

	for {
		lockErr := tryLock(file)
		if lockErr == nil {
			break
		}
		if !time.Now().Before(deadline) {
			_ = file.Close()
			return nil, zerr.With(
				zerr.With(zerr.Wrap(lockErr, domain.ErrLockFailed.Error()), "path", path),
				"timeout", l.Timeout.String(),
			)
		}
		time.Sleep(backoff)
		if backoff < 200*time.Millisecond {
			backoff *= 2
		}
	}

	released := false
	return func() error {
		if released {
			return nil
		}
		released = true

		unlockErr := unlock(file)
		closeErr := file.Close()
		if unlockErr != nil {
			return zerr.Wrap(unlockErr, domain.ErrLockFailed.Error())
		}
		return closeErr
	}, nil
}
