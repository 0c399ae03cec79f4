// Package export writes query results to CSV or JSON.
//
// Both writers accept the lazy result stream produced by a catalog
// query, so exporting respects result limits without materializing the
// full catalog. WriteCSV streams row by row; WriteJSON collects the
// records and encodes them in one document, optionally indented.
package export
