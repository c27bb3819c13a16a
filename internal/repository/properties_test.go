package repository

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/blobkeeper/internal/common"
	"github.com/dmitrijs2005/blobkeeper/internal/slot/memory"
	"pgregory.net/rapid"
)

func genData() *rapid.Generator[data] {
	return rapid.Custom(func(t *rapid.T) data {
		return data{
			Key: rapid.SampledFrom([]string{"1", "2", "3", "4", "5"}).Draw(t, "key"),
			Val: rapid.String().Draw(t, "val"),
		}
	})
}

// After AddOrUpdate(r), FindByKey(key(r)) returns r.
func TestAddOrUpdate_RoundTrip_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		r := New("key", resolver, memory.New())
		ctx := context.Background()
		d := genData().Draw(rt, "record")

		if err := r.AddOrUpdate(ctx, d); err != nil {
			rt.Fatalf("AddOrUpdate: %v", err)
		}
		got, ok, err := r.FindByKey(ctx, d.Key)
		if err != nil || !ok {
			rt.Fatalf("FindByKey: ok=%v err=%v", ok, err)
		}
		if got != d {
			rt.Fatalf("got %+v, want %+v", got, d)
		}
	})
}

// Keys stay unique, the latest write per key wins, and first-insertion order
// is kept.
func TestAddOrUpdate_Uniqueness_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		r := New("key", resolver, memory.New())
		ctx := context.Background()
		writes := rapid.SliceOf(genData()).Draw(rt, "writes")

		var order []string
		latest := map[string]data{}
		for _, d := range writes {
			if err := r.AddOrUpdate(ctx, d); err != nil {
				rt.Fatalf("AddOrUpdate: %v", err)
			}
			if _, seen := latest[d.Key]; !seen {
				order = append(order, d.Key)
			}
			latest[d.Key] = d
		}

		all, err := r.GetAll(ctx)
		if err != nil {
			rt.Fatalf("GetAll: %v", err)
		}
		if len(all) != len(order) {
			rt.Fatalf("got %d records, want %d", len(all), len(order))
		}
		for i, k := range order {
			if all[i] != latest[k] {
				rt.Fatalf("position %d: got %+v, want %+v", i, all[i], latest[k])
			}
		}
	})
}

// Two reads with no write in between are equal.
func TestGetAll_Idempotent_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		r := New("key", resolver, memory.New())
		ctx := context.Background()
		for _, d := range rapid.SliceOf(genData()).Draw(rt, "writes") {
			if err := r.AddOrUpdate(ctx, d); err != nil {
				rt.Fatalf("AddOrUpdate: %v", err)
			}
		}

		a, err := r.GetAll(ctx)
		if err != nil {
			rt.Fatalf("GetAll: %v", err)
		}
		b, err := r.GetAll(ctx)
		if err != nil {
			rt.Fatalf("GetAll: %v", err)
		}
		if len(a) != len(b) {
			rt.Fatalf("lengths differ: %d vs %d", len(a), len(b))
		}
		for i := range a {
			if a[i] != b[i] {
				rt.Fatalf("index %d differs: %+v vs %+v", i, a[i], b[i])
			}
		}
	})
}

// Remove succeeds iff the key is stored; afterwards the key is gone and the
// collection shrank by one. GetByKey and FindByKey agree on absence.
func TestRemove_NotFoundContract_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		r := New("key", resolver, memory.New())
		ctx := context.Background()
		stored := map[string]bool{}
		for _, d := range rapid.SliceOf(genData()).Draw(rt, "writes") {
			if err := r.AddOrUpdate(ctx, d); err != nil {
				rt.Fatalf("AddOrUpdate: %v", err)
			}
			stored[d.Key] = true
		}
		key := rapid.SampledFrom([]string{"1", "2", "3", "4", "5", "6"}).Draw(rt, "remove")

		_, ok, err := r.FindByKey(ctx, key)
		if err != nil {
			rt.Fatalf("FindByKey: %v", err)
		}
		if ok != stored[key] {
			rt.Fatalf("FindByKey ok=%v, stored=%v", ok, stored[key])
		}
		_, getErr := r.GetByKey(ctx, key)

		before, _ := r.GetAll(ctx)
		removed, err := r.Remove(ctx, key)

		if !stored[key] {
			if !isNotFound(err) || !isNotFound(getErr) {
				rt.Fatalf("expected NotFound, got remove=%v get=%v", err, getErr)
			}
			return
		}
		if err != nil || getErr != nil {
			rt.Fatalf("unexpected errors: remove=%v get=%v", err, getErr)
		}
		if removed.Key != key {
			rt.Fatalf("removed %+v, want key %s", removed, key)
		}
		after, _ := r.GetAll(ctx)
		if len(after) != len(before)-1 {
			rt.Fatalf("size %d -> %d", len(before), len(after))
		}
		if _, ok, _ := r.FindByKey(ctx, key); ok {
			rt.Fatalf("key %s still present", key)
		}
	})
}

func isNotFound(err error) bool {
	nf, ok := err.(*NotFoundError)
	return ok && nf.Is(common.ErrorNotFound)
}
