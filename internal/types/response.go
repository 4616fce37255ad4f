package types

// QueryResponse is the answer to a single natural-language query
type QueryResponse struct {
	Answer    string `json:"answer"`
	RequestID string `json:"request_id"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
