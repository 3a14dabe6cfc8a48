package apperr

type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// NotFoundError marks a lookup that resolved to no record. Distinct from
// upstream failures so the handler can answer 404 instead of 500.
type NotFoundError struct {
	Message string
	Err     error
}

func (e *NotFoundError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

func NewNotFound(msg string) *NotFoundError {
	return &NotFoundError{Message: msg}
}

// NewNotFoundWrap keeps the lookup failure as the cause while the message
// stays user-facing. Mirrors NewValidationWrap.
func NewNotFoundWrap(msg string, err error) *NotFoundError {
	return &NotFoundError{Message: msg, Err: err}
}

// UpstreamError marks a failure to reach the hosted data store.
type UpstreamError struct {
	Message string
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func NewUpstream(msg string, err error) *UpstreamError {
	return &UpstreamError{Message: msg, Err: err}
}
