package models

import (
	"bytes"
	"encoding/json"
)

// LoginRequest represents the request body for POST /login.
// No field is required and the password is never checked.
type LoginRequest struct {
	Email    LooseString `json:"email"`
	Password LooseString `json:"password"`
	Role     LooseString `json:"role"` // student, teacher or admin on the client; not validated here
}

// LooseString accepts any JSON value. Strings decode to their contents, null
// decodes to "" and anything else keeps its raw JSON text.
type LooseString string

func (s *LooseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = LooseString(str)
		return nil
	}
	*s = LooseString(data)
	return nil
}

func (s LooseString) String() string {
	return string(s)
}
