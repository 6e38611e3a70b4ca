package models

import "encoding/json"

// ScanResponse echoes the scanned payload.
type ScanResponse struct {
	Status string          `json:"status"`
	Code   json.RawMessage `json:"code"`
}
