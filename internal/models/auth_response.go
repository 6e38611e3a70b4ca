package models

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// LoginResponse is always returned with HTTP 200; Status carries the outcome.
type LoginResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
