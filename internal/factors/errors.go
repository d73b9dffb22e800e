package factors

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors returned by table construction and lookups.
var (
	// ErrKeyNotFound indicates a factor key that is not present in the table.
	ErrKeyNotFound = constError("emission factor key not found")

	// ErrInvalidCategory indicates a diet type outside the recognized set.
	// Diet types have no documented default, so the lookup fails.
	ErrInvalidCategory = constError("invalid category")

	// ErrNegativeFactor indicates a negative or non-finite coefficient.
	ErrNegativeFactor = constError("emission factor must be a finite non-negative number")

	// ErrDiscountRange indicates a discount fraction outside [0,1].
	ErrDiscountRange = constError("discount fraction must be within [0,1]")

	// ErrUnsupportedVersion indicates a factor file whose version is not supported.
	ErrUnsupportedVersion = constError("unsupported factor table version")
)
