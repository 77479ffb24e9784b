package fixture_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofrs/flock"

	"fixclean/internal/fixture"
)

func holdLock(t *testing.T, pair fixture.Pair) func() {
	t.Helper()
	lock := flock.New(fixture.LockPath(pair.Dir()))
	ok, err := lock.TryLock()
	if err != nil || !ok {
		t.Fatalf("hold lock: ok=%v err=%v", ok, err)
	}
	released := false
	return func() {
		if released {
			return
		}
		released = true
		_ = lock.Unlock()
	}
}

func TestLockPathStablePerDirectory(t *testing.T) {
	dir := t.TempDir()
	a := fixture.LockPath(dir)
	b := fixture.LockPath(filepath.Join(dir, "."))
	if a != b {
		t.Fatalf("expected stable lock path, got %q and %q", a, b)
	}
	if other := fixture.LockPath(t.TempDir()); other == a {
		t.Fatal("expected distinct lock paths for distinct directories")
	}
	if !strings.HasPrefix(filepath.Base(a), "fixclean-") || filepath.Ext(a) != ".lock" {
		t.Fatalf("unexpected lock name %q", a)
	}
}
