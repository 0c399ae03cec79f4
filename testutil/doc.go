// Package testutil provides testing utilities for neodb.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating seeded synthetic NEO datasets and
// rendering them in the neos.csv and cad.json input formats.
//
// # Synthetic Datasets
//
//	rng := testutil.NewRNG(seed)
//	objects := rng.Objects(1000)
//	approaches := rng.Approaches(objects, 4, 0.05)
//
// # Input Fixtures
//
//	neosCSV := testutil.ObjectsCSV(objects)
//	cadJSON := testutil.ApproachesJSON(approaches)
package testutil
