package errs

// Error taxonomy shared by the usecase and handler layers.
// Lower layers Mark their errors with one of these so errors.Is survives wrapping.
var (
	// Malformed or out-of-range input
	ErrInvalidInput = New("invalid input")

	// Bad origin, missing/invalid/expired token, bad admin credentials
	ErrUnauthorized = New("unauthorized")

	ErrRateLimited = New("rate limited")

	// Unknown guest id
	ErrNotFound = New("not found")

	// Duplicate submission
	ErrConflict = New("conflict")

	// Storage unreadable or unwritable
	ErrServerFault = New("server fault")
)

// NewKind returns a sentinel that matches kind under Is while staying
// distinguishable from other sentinels of the same kind.
func NewKind(msg string, kind error) error {
	return &kindError{msg: msg, kind: kind}
}

type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Is(target error) bool { return target == e.kind }
