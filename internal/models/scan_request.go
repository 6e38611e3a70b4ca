package models

import "encoding/json"

// ScanRequest carries the raw "code" value so it can be echoed byte for byte.
// An absent key leaves Code nil, which encodes as null.
type ScanRequest struct {
	Code json.RawMessage `json:"code"`
}
