package main

import (
	"fmt"
	"log"
	"time"

	"github.com/hupe1980/neodb"
	"github.com/hupe1980/neodb/testutil"
)

func main() {
	seed := int64(4711)
	numObjects := 20000
	perObject := 4

	rng := testutil.NewRNG(seed)
	objects := rng.Objects(numObjects)
	approaches := rng.Approaches(objects, perObject, 0.05)
	approaches = append(approaches, rng.UnresolvedApproaches(50)...)

	fmt.Println("--- Link ---")
	fmt.Println("Objects:", len(objects))
	fmt.Println("Approaches:", len(approaches))

	metrics := &neodb.BasicMetricsCollector{}

	start := time.Now()

	catalog, err := neodb.New(objects, approaches, neodb.WithMetricsCollector(metrics))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Seconds: %.2f\n\n", time.Since(start).Seconds())

	stats := catalog.Stats()
	fmt.Println("Named:", stats.Named)
	fmt.Println("Resolved:", stats.Resolved)
	fmt.Println("Unresolved:", stats.Unresolved)
	fmt.Println()

	fmt.Println("--- Lookup ---")

	obj, ok := catalog.FindByDesignation("1000")
	if !ok {
		log.Fatal("designation 1000 not found")
	}

	fmt.Println(obj)
	fmt.Println("Approaches:", catalog.ApproachCount(obj))
	fmt.Println()

	fmt.Println("--- Query ---")

	start = time.Now()

	results := catalog.Select().
		MaxDistance(0.05).
		MinVelocity(30).
		Hazardous(true).
		Limit(10).
		Execute()

	end := time.Since(start)

	printResults(results)

	fmt.Printf("Seconds: %.8f\n\n", end.Seconds())

	fmt.Println("--- Count ---")

	start = time.Now()

	count := catalog.Select().
		MaxDistance(0.05).
		Count()

	end = time.Since(start)

	fmt.Println("Approaches within 0.05 au:", count)
	fmt.Printf("Seconds: %.8f\n", end.Seconds())
}

func printResults(results []neodb.Result) {
	for _, res := range results {
		fmt.Printf("%s | %s\n", res.Approach, res.Object)
	}
}
