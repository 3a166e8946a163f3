package filelock

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
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

func TestWithLockSerializesWriters(t *testing.T) {
	tmpDir := t.TempDir()
	lockPath := filepath.Join(tmpDir, "nested", "counter.lock")
	counterPath := filepath.Join(tmpDir, "counter.txt")
	if err := os.WriteFile(counterPath, []byte("0"), 0644); err != nil {
		t.Fatalf("failed to seed counter: %v", err)
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
					n, err := strconv.Atoi(string(data))
					if err != nil {
						return err
					}
					return os.WriteFile(counterPath, []byte(strconv.Itoa(n+1)), 0644)
				})
				if err != nil {
					t.Errorf("WithLock failed: %v", err)
				}
			}
		}()
	}
	wg.Wait()

	data, err := os.ReadFile(counterPath)
	if err != nil {
		t.Fatalf("failed to read counter: %v", err)
	}
	if got := string(data); got != strconv.Itoa(goroutines*iterations) {
		t.Errorf("counter = %s, want %d", got, goroutines*iterations)
	}
}

func TestWithLockReturnsCallbackError(t *testing.T) {
	want := errors.New("boom")
	err := WithLock(filepath.Join(t.TempDir(), "x.lock"), func() error { return want })
	if !errors.Is(err, want) {
		t.Errorf("WithLock error = %v, want %v", err, want)
	}
}
