package diagnostics

// Error codes for the D7K front end.
const (
	// Scanner errors (L prefix)
	ErrUnexpectedCharacter = "L0001"
	ErrUnterminatedString  = "L0002"
	ErrUnterminatedComment = "L0003"

	// Parser errors (P prefix)
	ErrUnexpectedToken   = "P0001"
	ErrExpectedToken     = "P0002"
	ErrInvalidExpression = "P0003"
	ErrMissingMain       = "P0004"
	ErrTrailingInput     = "P0005"

	// Semantic errors (S prefix)
	ErrTypeMismatch       = "S0001"
	ErrUndeclaredSymbol   = "S0002"
	ErrDuplicateSymbol    = "S0003"
	ErrInvalidOperation   = "S0004"
	ErrUndeclaredFunction = "S0005"
	ErrWrongArgumentCount = "S0006"
	ErrInvalidReturn      = "S0007"
	ErrInvalidCondition   = "S0008"
)
