package shared

// EventType defines the possible transaction event kinds
type EventType string

const (
	EventTypeDeposit    EventType = "deposit"
	EventTypeWithdrawal EventType = "withdrawal"
	EventTypeDispute    EventType = "dispute"
	EventTypeResolve    EventType = "resolve"
	EventTypeChargeback EventType = "chargeback"
)

// Valid reports whether t is one of the five known event kinds.
func (t EventType) Valid() bool {
	switch t {
	case EventTypeDeposit, EventTypeWithdrawal, EventTypeDispute, EventTypeResolve, EventTypeChargeback:
		return true
	}
	return false
}
