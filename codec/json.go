package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// Notes:
// - For record-like structures (maps, structs, slices), JSON is stable and portable.
// - Unknown numeric values must be mapped to nil before encoding; NaN is not valid JSON.
//
// If you need custom encoding (e.g. protobuf/msgpack), implement Codec and set
// it where supported.
//
// Performance note:
//   - If you need the most portable/lowest-dependency option, use JSON.
//   - The default codec may change over time; select a codec explicitly where
//     byte-for-byte stability matters.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the default codec used by the library.
var Default Codec = GoJSON{}
