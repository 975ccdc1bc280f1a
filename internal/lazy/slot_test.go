package lazy

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
)

func TestGetLoadsOnce(t *testing.T) {
	var loads atomic.Int32
	s := New("value.txt", func(path string) (string, error) {
		loads.Add(1)
		return "hello", nil
	})

	const n = 32
	results := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := s.Get()
			if err != nil {
				t.Errorf("Get: %v", err)
				return
			}
			results[i] = v
		}(i)
	}
	wg.Wait()

	if got := loads.Load(); got != 1 {
		t.Fatalf("load ran %d times, want 1", got)
	}
	for i, v := range results {
		if v != "hello" {
			t.Fatalf("result %d = %q, want %q", i, v, "hello")
		}
	}
}

func TestGetIdempotentAfterSourceRemoved(t *testing.T) {
	path := filepath.Join(t.TempDir(), "text.md")
	if err := os.WriteFile(path, []byte("content"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := New(path, func(p string) (string, error) {
		b, err := os.ReadFile(p)
		return string(b), err
	})

	first, err := s.Get()
	if err != nil {
		t.Fatalf("first Get: %v", err)
	}
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	second, err := s.Get()
	if err != nil {
		t.Fatalf("second Get after removing source: %v", err)
	}
	if first != second {
		t.Errorf("second Get = %q, want cached %q", second, first)
	}
}

func TestGetFailureStaysUnloaded(t *testing.T) {
	want := errors.New("boom")
	fail := true
	var loads int
	s := New("x", func(string) (string, error) {
		loads++
		if fail {
			return "", want
		}
		return "ok", nil
	})

	if _, err := s.Get(); !errors.Is(err, want) {
		t.Fatalf("Get error = %v, want %v", err, want)
	}
	if s.Loaded() {
		t.Fatal("slot marked loaded after failed load")
	}

	fail = false
	v, err := s.Get()
	if err != nil {
		t.Fatalf("retry Get: %v", err)
	}
	if v != "ok" || loads != 2 {
		t.Errorf("retry = (%q, %d loads), want (ok, 2)", v, loads)
	}
}

func TestPutReplacesValueWithoutLoad(t *testing.T) {
	s := New("x", func(string) (int, error) {
		t.Error("load should not run")
		return 0, nil
	})
	s.Put(42)
	v, err := s.Get()
	if err != nil {
		t.Fatal(err)
	}
	if v != 42 {
		t.Errorf("Get = %d, want 42", v)
	}
}

func TestPutOverwritesLoadedValue(t *testing.T) {
	s := New("x", func(string) (int, error) { return 1, nil })
	if v, _ := s.Get(); v != 1 {
		t.Fatalf("Get = %d, want 1", v)
	}
	s.Put(2)
	if v, _ := s.Get(); v != 2 {
		t.Errorf("Get after Put = %d, want 2", v)
	}
}
