package entities

// PurchaseStatus classifies how urgently an item must be reordered
type PurchaseStatus int

const (
	// StatusPending means the next order date is still in the future
	StatusPending PurchaseStatus = iota
	// StatusDueToday means the next order date has arrived
	StatusDueToday
	// StatusOverdue means the order date predates the registration baseline
	StatusOverdue
)

// String method for PurchaseStatus enum
func (s PurchaseStatus) String() string {
	switch s {
	case StatusPending:
		return "PENDING"
	case StatusDueToday:
		return "DUE_TODAY"
	case StatusOverdue:
		return "OVERDUE"
	default:
		return "UNKNOWN"
	}
}

// MarshalText writes the status name so reports serialise readably
func (s PurchaseStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
