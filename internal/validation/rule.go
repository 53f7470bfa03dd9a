package validation

// Kind identifies the primitive type a field rule checks against.
type Kind string

const (
	KindText    Kind = "text"
	KindNumber  Kind = "number"
	KindBoolean Kind = "boolean"
	KindDate    Kind = "date"
)

// Rule is the validation contract for a single payload field.
//
// Minimum and Maximum are interpreted per Kind: character-count bounds for
// text, the exact string length for dates, and unused for numbers and
// booleans.
type Rule struct {
	Name     string
	Required bool
	Minimum  int
	Maximum  int
	Kind     Kind
}
