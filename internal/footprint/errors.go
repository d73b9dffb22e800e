package footprint

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrInvalidInput indicates a household input that failed boundary validation.
const ErrInvalidInput = constError("invalid household input")
