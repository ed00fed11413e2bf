package filelock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/flock"
)

func TestNewFileLock(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "test.lock")

	lock := NewFileLock(lockPath)
	if lock == nil {
		t.Fatal("NewFileLock should not return nil")
	}
	if lock.path != lockPath {
		t.Errorf("Expected lock path %s, got %s", lockPath, lock.path)
	}
}

func TestLockUnlock(t *testing.T) {
	lock := NewFileLock(filepath.Join(t.TempDir(), "test.lock"))

	if err := lock.Lock(); err != nil {
		t.Fatalf("Failed to acquire lock: %v", err)
	}
	if err := lock.Unlock(); err != nil {
		t.Fatalf("Failed to release lock: %v", err)
	}
}

func TestLockExcludesOtherHolders(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "test.lock")

	lock := NewFileLock(lockPath)
	if err := lock.Lock(); err != nil {
		t.Fatalf("Failed to acquire lock: %v", err)
	}

	other := flock.New(lockPath)
	acquired, err := other.TryLock()
	if err != nil {
		t.Fatalf("TryLock failed: %v", err)
	}
	if acquired {
		t.Error("TryLock should fail while the lock is held")
	}

	if err := lock.Unlock(); err != nil {
		t.Fatalf("Unlock failed: %v", err)
	}

	acquired, err = other.TryLock()
	if err != nil {
		t.Fatalf("TryLock failed: %v", err)
	}
	if !acquired {
		t.Error("TryLock should succeed after unlock")
	}
	other.Unlock()
}

func TestWithLockSerializes(t *testing.T) {
	tmpDir := t.TempDir()
	lockPath := filepath.Join(tmpDir, "test.lock")
	counterPath := filepath.Join(tmpDir, "counter.txt")
	if err := os.WriteFile(counterPath, []byte("0"), 0644); err != nil {
		t.Fatal(err)
	}

	const goroutines = 5
	const iterations = 10

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				err := WithLock(lockPath, func() error {
					data, err := os.ReadFile(counterPath)
					if err != nil {
						return err
					}
					var counter int
					fmt.Sscanf(string(data), "%d", &counter)
					time.Sleep(time.Millisecond)
					return os.WriteFile(counterPath, []byte(fmt.Sprintf("%d", counter+1)), 0644)
				})
				if err != nil {
					t.Errorf("WithLock failed: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	data, err := os.ReadFile(counterPath)
	if err != nil {
		t.Fatalf("Failed to read final counter: %v", err)
	}
	var final int
	fmt.Sscanf(string(data), "%d", &final)
	if final != goroutines*iterations {
		t.Errorf("Expected counter %d, got %d (race condition detected)", goroutines*iterations, final)
	}
}

func TestWithLockReleasesOnError(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "test.lock")
	boom := errors.New("boom")

	err := WithLock(lockPath, func() error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("Expected boom, got %v", err)
	}

	other := flock.New(lockPath)
	defer other.Unlock()
	acquired, err := other.TryLock()
	if err != nil {
		t.Fatalf("TryLock failed: %v", err)
	}
	if !acquired {
		t.Error("lock should be free after WithLock returned an error")
	}
}
