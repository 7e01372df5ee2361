package errs

// ErrorKind identifies a kind of internal error.
// fully support for errors.Is and errors.As.
type ErrorKind string

const (
	// NotFound is returned when a requested item is not found.
	NotFound        = ErrorKind("Not Found")
	InvalidArgument = ErrorKind("Invalid Argument")
	Unsupported     = ErrorKind("Unsupported")
	Conflict        = ErrorKind("Conflict")
	Unauthorized    = ErrorKind("Unauthorized")
	Timeout         = ErrorKind("Timeout")
	OverflowUint64  = ErrorKind("overflow uint64")
	OverflowUint256 = ErrorKind("overflow uint256")

	// Drop engine failure signals. Each aborts the whole call with rollback.
	NotAllowedToMint = ErrorKind("Not Allowed To Mint")
	NotEnoughSupply  = ErrorKind("Not Enough Supply")
	MintingTooMany   = ErrorKind("Minting Too Many")
	WrongPrice       = ErrorKind("Wrong Price")
	LengthMismatch   = ErrorKind("Length Mismatch")
	InvalidTokenID   = ErrorKind("Invalid Token ID")
	MustBeUnminted   = ErrorKind("Must Be Unminted")
	NotReserved      = ErrorKind("Not Reserved")
	WrongState       = ErrorKind("Wrong State")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}
