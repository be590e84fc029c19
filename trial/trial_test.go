package trial

import (
	"sync"
	"testing"

	"golang.org/x/exp/slices"

	"statsmc/errs"
)

func TestKeyJoinsOnNulByte(t *testing.T) {
	got := Key([]string{"1", "23"})
	want := "1\x0023"
	if got != want {
		t.Errorf("Key = %q, want %q", got, want)
	}
	// Without the separator ["1","23"] and ["12","3"] would collide.
	if Key([]string{"1", "23"}) == Key([]string{"12", "3"}) {
		t.Errorf("distinct assignments produced the same key")
	}
}

func TestCacheLookupMiss(t *testing.T) {
	c := NewCache()
	if _, ok := c.Lookup([]string{"1", "2"}); ok {
		t.Errorf("Lookup on empty cache reported a hit")
	}
}

func TestCacheInsertThenLookup(t *testing.T) {
	c := NewCache()
	assignment := []string{"1.0", "2.0"}

	if err := c.Insert(assignment, Sat); err != nil {
		t.Fatalf("Insert: unexpected error: %v", err)
	}
	v, ok := c.Lookup(assignment)
	if !ok {
		t.Fatalf("Lookup reported a miss after Insert")
	}
	if v != Sat {
		t.Errorf("Lookup = %v, want Sat", v)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCacheInsertIdempotentOnMatchingVerdict(t *testing.T) {
	c := NewCache()
	assignment := []string{"3.0"}

	if err := c.Insert(assignment, Unsat); err != nil {
		t.Fatalf("Insert: unexpected error: %v", err)
	}
	if err := c.Insert(assignment, Unsat); err != nil {
		t.Errorf("repeated Insert with matching verdict returned error: %v", err)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCacheInsertConflictIsNondeterministic(t *testing.T) {
	c := NewCache()
	assignment := []string{"4.0"}

	if err := c.Insert(assignment, Sat); err != nil {
		t.Fatalf("Insert: unexpected error: %v", err)
	}
	err := c.Insert(assignment, Unsat)
	if err == nil {
		t.Fatalf("expected conflict error")
	}
	nd, ok := err.(*errs.OracleNondeterministic)
	if !ok {
		t.Fatalf("error = %T, want *errs.OracleNondeterministic", err)
	}
	if !nd.First || nd.Second {
		t.Errorf("OracleNondeterministic = %+v, want First=true Second=false", nd)
	}

	v, _ := c.Lookup(assignment)
	if v != Sat {
		t.Errorf("first-recorded verdict was overwritten: got %v", v)
	}
}

func TestCacheKeysSortedAndComplete(t *testing.T) {
	c := NewCache()
	c.Insert([]string{"3.0"}, Sat)
	c.Insert([]string{"1.0"}, Unsat)
	c.Insert([]string{"2.0"}, Sat)

	keys := c.Keys()
	if len(keys) != 3 {
		t.Fatalf("Keys() returned %d entries, want 3", len(keys))
	}
	if !slices.IsSorted(keys) {
		t.Fatalf("Keys() not sorted: %v", keys)
	}
	want := []string{"1.0", "2.0", "3.0"}
	if !slices.Equal(keys, want) {
		t.Fatalf("Keys() = %v, want %v", keys, want)
	}
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := NewCache()
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			assignment := []string{string(rune('a' + i%26))}
			c.Lookup(assignment)
			c.Insert(assignment, Verdict(i%2 == 0))
		}()
	}
	wg.Wait()
}
