package services

import "github.com/vsinha/reorder/pkg/domain/entities"

// Clock returns the current calendar date
type Clock func() entities.Date

// Today returns the clock's current date, falling back to the local date
func (c Clock) Today() entities.Date {
	if c == nil {
		return entities.Today()
	}
	return c()
}

// FixedClock always returns date
func FixedClock(date entities.Date) Clock {
	return func() entities.Date { return date }
}
