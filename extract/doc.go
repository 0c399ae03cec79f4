// Package extract parses the NASA near-Earth object and close-approach
// datasets.
//
// LoadObjects reads the small-body CSV export (neos.csv) and
// LoadApproaches reads the close-approach JSON dump (cad.json). Both
// resolve columns by header name, tolerate unknown values (empty
// diameter, distance or velocity, missing approach time) and validate
// every record eagerly, reporting the offending row on failure.
//
// Loader ties the two together: it reads both files from a
// blobstore.Store, decompressing .gz, .zst and .lz4 blobs
// transparently, and links them into a neodb.Catalog.
package extract
