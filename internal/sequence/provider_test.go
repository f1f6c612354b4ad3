package sequence

import (
	"context"
	"sync"
	"testing"
)

func TestMemoryMonotonic(t *testing.T) {
	m := NewMemory(41)
	ctx := context.Background()
	first, err := m.Next(ctx)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if first != 42 {
		t.Fatalf("first Next = %d, want 42", first)
	}
	prev := first
	for i := 0; i < 100; i++ {
		n, err := m.Next(ctx)
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if n != prev+1 {
			t.Fatalf("Next = %d after %d, want %d", n, prev, prev+1)
		}
		prev = n
	}
}

func TestMemoryConcurrentNoDuplicates(t *testing.T) {
	m := NewMemory(0)
	ctx := context.Background()
	const workers, per = 8, 200

	var mu sync.Mutex
	seen := make(map[uint64]bool, workers*per)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < per; i++ {
				n, _ := m.Next(ctx)
				mu.Lock()
				if seen[n] {
					mu.Unlock()
					t.Errorf("duplicate ticket number %d", n)
					return
				}
				seen[n] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if len(seen) != workers*per {
		t.Fatalf("issued %d unique numbers, want %d", len(seen), workers*per)
	}
}
