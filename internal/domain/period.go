package domain

// CalendarPeriod is a named part of the academic year ("Fall", "Spring").
// Its ID is chosen by the caller, not generated, and doubles as the sort key.
type CalendarPeriod struct {
	ID   int
	Name string
}

// String returns the period name.
func (p CalendarPeriod) String() string {
	return p.Name
}
