package domain

import (
	"fmt"
	"time"
)

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return e.Entity + " not found"
	}
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string { return e.Message }

// StateConflictError rejects a lifecycle event invoked from a status
// that is not a valid source for it.
type StateConflictError struct {
	Event   string
	Current string
}

func (e *StateConflictError) Error() string {
	return fmt.Sprintf("cannot %s a record in status %s", e.Event, e.Current)
}

// CapacityExceededError names the first day, in range order, whose
// booked count would reach or exceed the cap.
type CapacityExceededError struct {
	Day    time.Time
	Booked int
	Cap    int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("no ad slots left on %s: %d of %d booked", e.Day.Format("2006-01-02"), e.Booked, e.Cap)
}

type PaymentVerificationError struct {
	Message string
}

func (e *PaymentVerificationError) Error() string { return e.Message }

// TransactionAbortError wraps a storage failure that rolled back a
// settlement transaction.
type TransactionAbortError struct {
	Err error
}

func (e *TransactionAbortError) Error() string {
	return "settlement transaction aborted: " + e.Err.Error()
}

func (e *TransactionAbortError) Unwrap() error { return e.Err }
