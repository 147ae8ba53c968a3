package responses

// ErrorResponse is the only error shape the API returns.
type ErrorResponse struct {
	Error string `json:"error"`
}
