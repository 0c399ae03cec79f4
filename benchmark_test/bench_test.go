package benchmark_test

import (
	"io"
	"strconv"
	"testing"

	"github.com/hupe1980/neodb"
	"github.com/hupe1980/neodb/export"
	"github.com/hupe1980/neodb/testutil"
)

// Standard dataset sizes. The full NASA close-approach dataset holds roughly
// 23k objects and 400k approaches; sizeLarge matches that scale.
const (
	sizeSmall  = 1_000
	sizeMedium = 10_000
	sizeLarge  = 25_000
)

const approachesPerObject = 16

func buildCatalog(b *testing.B, numObjects int) *neodb.Catalog {
	b.Helper()

	rng := testutil.NewRNG(4711)
	objects := rng.Objects(numObjects)
	approaches := rng.Approaches(objects, approachesPerObject, 0.05)

	catalog, err := neodb.New(objects, approaches)
	if err != nil {
		b.Fatal(err)
	}

	return catalog
}

func BenchmarkLink_Small(b *testing.B)  { benchmarkLink(b, sizeSmall) }
func BenchmarkLink_Medium(b *testing.B) { benchmarkLink(b, sizeMedium) }
func BenchmarkLink_Large(b *testing.B)  { benchmarkLink(b, sizeLarge) }

func benchmarkLink(b *testing.B, numObjects int) {
	b.ReportAllocs()

	rng := testutil.NewRNG(4711)
	objects := rng.Objects(numObjects)
	approaches := rng.Approaches(objects, approachesPerObject, 0.05)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := neodb.New(objects, approaches); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFindByDesignation(b *testing.B) {
	catalog := buildCatalog(b, sizeMedium)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		// Multiples of 5 stay clear of the provisional designations the
		// generator assigns to every fifth object.
		designation := strconv.Itoa(1000 + (i*5)%sizeMedium)
		if _, ok := catalog.FindByDesignation(designation); !ok {
			b.Fatalf("missing designation %s", designation)
		}
	}
}

func BenchmarkFindByName(b *testing.B) {
	catalog := buildCatalog(b, sizeMedium)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		name := "Asteroid " + strconv.Itoa((i*3)%sizeMedium)
		if _, ok := catalog.FindByName(name); !ok {
			b.Fatalf("missing name %s", name)
		}
	}
}

func BenchmarkQuery_Execute(b *testing.B) {
	catalog := buildCatalog(b, sizeMedium)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		results := catalog.Select().MaxDistance(0.05).MinVelocity(30).Execute()
		if len(results) == 0 {
			b.Fatal("no results")
		}
	}
}

func BenchmarkQuery_Limit(b *testing.B) {
	catalog := buildCatalog(b, sizeLarge)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		results := catalog.Select().Hazardous(true).Limit(10).Execute()
		if len(results) != 10 {
			b.Fatalf("got %d results, want 10", len(results))
		}
	}
}

func BenchmarkQuery_Count(b *testing.B) {
	catalog := buildCatalog(b, sizeMedium)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if n := catalog.Select().MaxDistance(0.1).Count(); n == 0 {
			b.Fatal("no results")
		}
	}
}

func BenchmarkExportCSV(b *testing.B) {
	catalog := buildCatalog(b, sizeSmall)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := export.WriteCSV(io.Discard, catalog.All()); err != nil {
			b.Fatal(err)
		}
	}
}
