package appstore

// ValidationError reports a raw payload that cannot be parsed at all.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ErrMissingRawData is returned by Parse when no raw payload has been
// assigned to the record.
var ErrMissingRawData = &ValidationError{Message: "response must be an array"}
