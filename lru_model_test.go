package lru_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/djdv/go-lru"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/hashicorp/golang-lru/v2/simplelru"
)

// TestAgainstModel drives random operations against both the cache
// and hashicorp's simplelru, comparing results after every step.
// simplelru overwrites on Add, so refreshing a resident key
// is modeled as a Get.
func TestAgainstModel(t *testing.T) {
	for _, capacity := range []int{1, 2, 7, 64} {
		t.Run(fmt.Sprintf("Cap%d", capacity), func(t *testing.T) {
			t.Parallel()
			modelAgainst(t, capacity)
		})
	}
}

func modelAgainst(t *testing.T, capacity int) {
	const (
		steps     = 1 << 12
		setRatio  = 0.5
		universe  = 3 // Times capacity; keeps a mix of hits and misses.
		stepLimit = 8 // Failures reported per run before giving up.
	)
	var (
		rng                     = newReproducibleRNG()
		gotEvicted, wantEvicted []int
		observer                = lru.ObserverFuncs[int, int]{
			OnEvicted: func(key int) { gotEvicted = append(gotEvicted, key) },
		}
	)
	cache, err := lru.NewObserved[int, int](capacity, observer)
	if err != nil {
		t.Fatal(err)
	}
	model, err := simplelru.NewLRU[int, int](capacity, func(key, _ int) {
		wantEvicted = append(wantEvicted, key)
	})
	if err != nil {
		t.Fatal(err)
	}
	failures := 0
	for step := range steps {
		key := rng.Intn(capacity * universe)
		if rng.Float64() < setRatio {
			value := rng.Int()
			cache.Set(key, value)
			if model.Contains(key) {
				model.Get(key)
			} else {
				model.Add(key, value)
			}
		} else {
			got, gotOK := cache.Get(key)
			want, wantOK := model.Get(key)
			if got != want || gotOK != wantOK {
				t.Errorf("step %d: Get(%d) = %d, %t; want %d, %t",
					step, key, got, gotOK, want, wantOK)
				failures++
			}
		}
		if diff := cmp.Diff(model.Keys(), slices.Collect(cache.Keys()), cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("step %d: recency order differs (-want +got):\n%s", step, diff)
			failures++
		}
		if got := cache.Len(); got > capacity {
			t.Errorf("step %d: length %d exceeds capacity %d", step, got, capacity)
			failures++
		}
		if failures >= stepLimit {
			t.FailNow()
		}
	}
	if diff := cmp.Diff(wantEvicted, gotEvicted); diff != "" {
		t.Errorf("eviction sequence differs (-want +got):\n%s", diff)
	}
}
