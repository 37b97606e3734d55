package notes

import "errors"

var (
	ErrUnknownIntent = errors.New("unknown intent")
	ErrUnknownField  = errors.New("unknown form field")
	ErrTitleRequired = errors.New("title required")
)

// ValidationError rejects a save. It carries a message fit for the operator
// and unwraps to the matching sentinel.
type ValidationError struct {
	Field   Field
	Message string

	err error
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.err
}

func titleRequired() *ValidationError {
	return &ValidationError{Field: FieldTitle, Message: ErrTitleRequired.Error(), err: ErrTitleRequired}
}
