package model

// Response is the base envelope every endpoint returns. Success-path
// handlers embed it alongside their payload fields; error paths return it
// alone with a human-readable message.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
