package gradient

import (
	"sync"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestTableCacheSharesIdenticalGradients(t *testing.T) {
	d := Descriptor{
		Colors:    []Color4f{RGB(1, 0, 0), RGB(0, 1, 0), RGB(0, 0, 1)},
		Positions: []float32{0, 0.3, 1},
	}
	g1 := mustNew(t, d)
	g2 := mustNew(t, d)

	t1 := g1.LookupTable(nil, gputypes.TextureFormatRGBA8Unorm)
	t2 := g2.LookupTable(nil, gputypes.TextureFormatRGBA8Unorm)
	if t1 != t2 {
		t.Error("identical canonical gradients produced distinct tables")
	}
}

func TestTableCacheDiscriminates(t *testing.T) {
	base := Descriptor{
		Colors:    []Color4f{RGB(1, 0, 0), RGB(0, 1, 0), RGB(0, 0, 1)},
		Positions: []float32{0, 0.3, 1},
	}
	g := mustNew(t, base)
	ref := g.LookupTable(nil, gputypes.TextureFormatRGBA8Unorm)

	t.Run("format", func(t *testing.T) {
		if got := g.LookupTable(nil, gputypes.TextureFormatRGBA16Float); got == ref {
			t.Error("different texel formats shared a table")
		}
	})

	t.Run("flags", func(t *testing.T) {
		d := base
		d.Flags = FlagInterpolateColorsInPremul
		if got := mustNew(t, d).LookupTable(nil, gputypes.TextureFormatRGBA8Unorm); got == ref {
			t.Error("different interpolation flags shared a table")
		}
	})

	t.Run("positions", func(t *testing.T) {
		d := base
		d.Positions = []float32{0, 0.6, 1}
		if got := mustNew(t, d).LookupTable(nil, gputypes.TextureFormatRGBA8Unorm); got == ref {
			t.Error("different stop positions shared a table")
		}
	})
}

func TestTableCacheBounded(t *testing.T) {
	for i := 0; i < 3*maxCachedTables; i++ {
		g := mustNew(t, Descriptor{
			Colors: []Color4f{RGB(float32(i)/128, 0, 0), RGB(0, 0, 1)},
		})
		g.LookupTable(nil, gputypes.TextureFormatRGBA8Unorm)
	}
	if got := sharedTableCache().len(); got > maxCachedTables {
		t.Errorf("cache holds %d entries, cap is %d", got, maxCachedTables)
	}
}

func TestTableCacheStats(t *testing.T) {
	before := TableCacheStats()

	g := mustNew(t, Descriptor{
		Colors:    []Color4f{RGB(0.017, 0.029, 0.043), RGB(0.61, 0.37, 0.23)},
		Positions: nil,
	})
	g.LookupTable(nil, gputypes.TextureFormatRGBA8Unorm) // miss
	g.LookupTable(nil, gputypes.TextureFormatRGBA8Unorm) // hit

	after := TableCacheStats()
	if after.Misses < before.Misses+1 {
		t.Errorf("Misses = %d, want at least %d", after.Misses, before.Misses+1)
	}
	if after.Hits < before.Hits+1 {
		t.Errorf("Hits = %d, want at least %d", after.Hits, before.Hits+1)
	}
	if after.Capacity != maxCachedTables {
		t.Errorf("Capacity = %d, want %d", after.Capacity, maxCachedTables)
	}
	if after.Len < 1 || after.Len > maxCachedTables {
		t.Errorf("Len = %d, want within [1, %d]", after.Len, maxCachedTables)
	}
	if total := after.Hits + after.Misses; total > 0 && after.HitRate <= 0 {
		t.Errorf("HitRate = %v, want positive after a hit", after.HitRate)
	}
}

func TestTableCacheConcurrent(t *testing.T) {
	g := mustNew(t, Descriptor{
		Colors:    []Color4f{RGB(0.1, 0.2, 0.3), RGB(0.9, 0.8, 0.7), RGB(0, 0, 0)},
		Positions: []float32{0, 0.4, 1},
	})

	const workers = 16
	tables := make([]*Table, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tables[i] = g.LookupTable(nil, gputypes.TextureFormatRGBA8Unorm)
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		if tables[i] != tables[0] {
			t.Fatalf("worker %d got a different table instance", i)
		}
	}
}
