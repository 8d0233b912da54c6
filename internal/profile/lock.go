package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/flock"
)

const lockRetryDelay = 50 * time.Millisecond

// lockPath returns the sidecar lock file guarding a SQLite source.
func lockPath(source string) string {
	return source + ".lock"
}

// readLock takes a shared lock on the sidecar of source, waiting out a
// running import. When the sidecar cannot be opened at all (read-only mount,
// blocked path) the source is read unlocked.
func readLock(ctx context.Context, source string) (func(), error) {
	l := flock.New(lockPath(source))
	locked, err := l.TryRLockContext(ctx, lockRetryDelay)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("cannot acquire read lock: %w", err)
		}
		return func() {}, nil
	}
	if !locked {
		return nil, fmt.Errorf("cannot acquire read lock on %s", lockPath(source))
	}
	return func() { _ = l.Unlock() }, nil
}

// writeLock takes an exclusive lock on the sidecar of path.
func writeLock(ctx context.Context, path string) (func(), error) {
	l := flock.New(lockPath(path))
	locked, err := l.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("cannot acquire write lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("another import is in progress (lock: %s)", lockPath(path))
	}
	return func() { _ = l.Unlock() }, nil
}
