package fixture

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another run holds the lock for the same directory.
var ErrLocked = errors.New("another fixclean run is processing this directory")

// LockPath returns the advisory lock file used for dir. Lock files live in the
// OS temp directory so the fixture directory only ever contains the two
// documents.
func LockPath(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}
	sum := sha256.Sum256([]byte(abs))
	return filepath.Join(os.TempDir(), "fixclean-"+hex.EncodeToString(sum[:8])+".lock")
}

func acquireLock(dir string) (*flock.Flock, error) {
	lock := flock.New(LockPath(dir))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, dir)
	}
	return lock, nil
}
