package response

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	InternalServerErrorCode = 500

	// DateTimeFormat is ISO-8601 with local offset.
	DateTimeFormat = "2006-01-02T15:04:05.000000Z07:00"
)
