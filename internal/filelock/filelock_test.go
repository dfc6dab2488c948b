package filelock

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestLockPath(t *testing.T) {
	got := LockPath(filepath.Join("out", "depression-screening-2026-10-16.pdf"))
	want := filepath.Join("out", "depression-screening-2026-10-16.pdf.lock")
	if got != want {
		t.Errorf("LockPath() = %q, want %q", got, want)
	}
}

func TestTryAcquire(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "report.pdf.lock")

	first := NewLock(lockPath)
	second := NewLock(lockPath)

	ok, err := first.TryAcquire()
	if err != nil {
		t.Fatalf("TryAcquire failed: %v", err)
	}
	if !ok {
		t.Fatal("first TryAcquire should succeed")
	}

	ok, err = second.TryAcquire()
	if err != nil {
		t.Fatalf("TryAcquire failed: %v", err)
	}
	if ok {
		t.Error("second TryAcquire should fail while the lock is held")
	}

	if err := first.Release(); err != nil {
		t.Fatalf("Release failed: %v", err)
	}

	ok, err = second.TryAcquire()
	if err != nil {
		t.Fatalf("TryAcquire failed: %v", err)
	}
	if !ok {
		t.Error("TryAcquire should succeed after release")
	}
	second.Release()
}

func TestAcquireHonoursContext(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "report.pdf.lock")

	holder := NewLock(lockPath)
	if ok, err := holder.TryAcquire(); err != nil || !ok {
		t.Fatalf("holder could not take lock: ok=%v err=%v", ok, err)
	}
	defer holder.Release()

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Millisecond)
	defer cancel()

	err := NewLock(lockPath).Acquire(ctx)
	if !errors.Is(err, ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
}

func TestWriteAtomic(t *testing.T) {
	target := filepath.Join(t.TempDir(), "report.md")

	if err := WriteAtomic(target, []byte("first")); err != nil {
		t.Fatalf("WriteAtomic failed: %v", err)
	}
	if err := WriteAtomic(target, []byte("second")); err != nil {
		t.Fatalf("WriteAtomic overwrite failed: %v", err)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("content = %q, want %q", data, "second")
	}
}

func TestWriteAtomicPermissions(t *testing.T) {
	target := filepath.Join(t.TempDir(), "report.pdf")

	if err := WriteAtomic(target, []byte("%PDF-1.3")); err != nil {
		t.Fatalf("WriteAtomic failed: %v", err)
	}

	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != ReportMode {
		t.Errorf("permissions = %v, want %v", info.Mode().Perm(), ReportMode)
	}
}

func TestWriteAtomicCreatesDirectory(t *testing.T) {
	target := filepath.Join(t.TempDir(), "exports", "2026", "report.html")

	if err := WriteAtomic(target, []byte("<table></table>")); err != nil {
		t.Fatalf("WriteAtomic failed: %v", err)
	}
	if _, err := os.Stat(target); err != nil {
		t.Errorf("expected file to exist: %v", err)
	}
}

func TestWriteLockedLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "report.json")

	if err := WriteLocked(context.Background(), target, []byte(`{}`)); err != nil {
		t.Fatalf("WriteLocked failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	if len(names) != 2 || names[0] != "report.json" || names[1] != "report.json.lock" {
		t.Errorf("unexpected directory contents: %v", names)
	}
}

func TestConcurrentWriteLocked(t *testing.T) {
	target := filepath.Join(t.TempDir(), "report.txt")

	const writers = 10
	var wg sync.WaitGroup
	wg.Add(writers)

	for i := 0; i < writers; i++ {
		go func(id int) {
			defer wg.Done()
			content := []byte(fmt.Sprintf("writer-%02d", id))
			if err := WriteLocked(context.Background(), target, content); err != nil {
				t.Errorf("WriteLocked failed for writer %d: %v", id, err)
			}
		}(i)
	}
	wg.Wait()

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(data) != len("writer-00") {
		t.Errorf("expected one complete write, got %q", data)
	}
}

func TestWriteLockedWaitsForHolder(t *testing.T) {
	target := filepath.Join(t.TempDir(), "report.md")

	holder := NewLock(LockPath(target))
	if ok, err := holder.TryAcquire(); err != nil || !ok {
		t.Fatalf("holder could not take lock: ok=%v err=%v", ok, err)
	}

	done := make(chan error, 1)
	go func() {
		done <- WriteLocked(context.Background(), target, []byte("after release"))
	}()

	select {
	case err := <-done:
		t.Fatalf("WriteLocked returned while lock was held: %v", err)
	case <-time.After(100 * time.Millisecond):
	}

	if err := holder.Release(); err != nil {
		t.Fatalf("Release failed: %v", err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("WriteLocked failed: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("WriteLocked did not finish after release")
	}
}
