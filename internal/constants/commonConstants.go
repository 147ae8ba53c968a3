package constants

type (
	LookupBackend string
	LookupOutcome string
)

const (
	LookupBackendSQLX LookupBackend = "sqlx"
	LookupBackendGORM LookupBackend = "gorm"

	LookupOutcomeFound    LookupOutcome = "found"
	LookupOutcomeNotFound LookupOutcome = "not_found"
	LookupOutcomeError    LookupOutcome = "error"
)

const (
	QueryParamIATACode = "iata_code"
	HeaderRequestID    = "X-Request-ID"
)
