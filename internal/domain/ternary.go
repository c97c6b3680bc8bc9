package domain

// TernaryLogicValue is the result of a dominance-oriented comparison
// between two evaluation fields. Comparisons are three-valued: besides
// holding or not holding, a relation can be undecidable when the fields
// have no common scale or incompatible variants.
type TernaryLogicValue int

const (
	// TernaryFalse means the relation does not hold.
	TernaryFalse TernaryLogicValue = iota

	// TernaryTrue means the relation holds.
	TernaryTrue

	// TernaryUncomparable means the relation cannot be decided, for
	// example between fields of different kinds or enumeration fields
	// over different element lists.
	TernaryUncomparable
)

// String returns the human-readable form of the value.
func (v TernaryLogicValue) String() string {
	switch v {
	case TernaryFalse:
		return "FALSE"
	case TernaryTrue:
		return "TRUE"
	case TernaryUncomparable:
		return "UNCOMPARABLE"
	default:
		return "UNKNOWN"
	}
}
