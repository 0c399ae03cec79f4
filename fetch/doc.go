// Package fetch downloads the NASA datasets from JPL's Solar System
// Dynamics API.
//
// The client throttles itself: request starts are rate limited and the
// number of in-flight requests is capped, since the API is a shared
// public service. Responses stream; nothing is retried (callers decide
// whether a refresh is worth repeating).
//
// Mirror is the refresh entry point: it lands a fresh (neos.csv,
// cad.json) pair in a blob store, converting the SBDB object records to
// the CSV layout the extraction package consumes.
package fetch
