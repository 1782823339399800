package types

// TYPE_NAME identifies one of the D7K semantic types.
type TYPE_NAME string

const (
	TYPE_NUMBER  TYPE_NAME = "NUMBER"  // integer literals, d7krqm variables
	TYPE_DECIMAL TYPE_NAME = "DECIMAL" // fractional literals, d7k34ry variables
	TYPE_STRING  TYPE_NAME = "STRING"  // d7kmslsl
	TYPE_BOOL    TYPE_NAME = "BOOL"    // d7kmntq
	TYPE_VOID    TYPE_NAME = "VOID"    // function with no meaningful result

	// TYPE_UNKNOWN marks an expression whose type could not be resolved.
	// It compares compatible with nothing and suppresses cascade errors.
	TYPE_UNKNOWN TYPE_NAME = "UNKNOWN"
)

func (t TYPE_NAME) String() string {
	return string(t)
}

// datatypeLexemes maps D7K datatype keywords to their semantic type.
var datatypeLexemes = map[string]TYPE_NAME{
	"d7krqm":   TYPE_NUMBER,
	"d7k34ry":  TYPE_DECIMAL,
	"d7kmslsl": TYPE_STRING,
	"d7kmntq":  TYPE_BOOL,
}

// FromLexeme resolves a datatype keyword lexeme to its semantic type.
func FromLexeme(lexeme string) (TYPE_NAME, bool) {
	t, ok := datatypeLexemes[lexeme]
	return t, ok
}

// IsNumeric reports whether t takes part in arithmetic and ordering.
func IsNumeric(t TYPE_NAME) bool {
	return t == TYPE_NUMBER || t == TYPE_DECIMAL
}

// IsUnknown reports whether t is the erroneous-expression marker.
func IsUnknown(t TYPE_NAME) bool {
	return t == TYPE_UNKNOWN
}

// Assignable reports whether a value of type source can be stored in a
// target of type target. The only implicit conversion in D7K is the one-way
// numeric widening NUMBER -> DECIMAL.
func Assignable(target, source TYPE_NAME) bool {
	if IsUnknown(target) || IsUnknown(source) {
		// Already diagnosed upstream.
		return true
	}
	if target == source {
		return true
	}
	return target == TYPE_DECIMAL && source == TYPE_NUMBER
}

// Widen returns the result type of an arithmetic operation over two numeric
// operands: DECIMAL if either side is DECIMAL, NUMBER otherwise.
func Widen(a, b TYPE_NAME) TYPE_NAME {
	if a == TYPE_DECIMAL || b == TYPE_DECIMAL {
		return TYPE_DECIMAL
	}
	return TYPE_NUMBER
}

// Comparable reports whether two types can meet under an equality operator.
// Numerics compare across the NUMBER/DECIMAL divide; STRING and BOOL only
// compare with themselves.
func Comparable(a, b TYPE_NAME) bool {
	if IsUnknown(a) || IsUnknown(b) {
		return true
	}
	if IsNumeric(a) && IsNumeric(b) {
		return true
	}
	return a == b && a != TYPE_VOID
}
