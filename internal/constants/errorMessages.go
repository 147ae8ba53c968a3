package constants

// Client-facing error bodies. Internal causes are logged, never sent.
const (
	MsgAirportNotFound     = "Airport not found"
	MsgInternalServerError = "Internal server error"
	MsgTooManyRequests     = "Too many requests"
)
