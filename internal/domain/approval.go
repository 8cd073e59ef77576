package domain

import "fmt"

// ApprovalStatus is the moderation state of a submitted event or profile.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// Valid reports whether s is one of the known statuses.
func (s ApprovalStatus) Valid() bool {
	switch s {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return true
	}
	return false
}

// ParseApprovalStatus converts a stored value into an ApprovalStatus.
func ParseApprovalStatus(v string) (ApprovalStatus, error) {
	s := ApprovalStatus(v)
	if !s.Valid() {
		return "", fmt.Errorf("%w: unknown approval status %q", ErrInvalidInput, v)
	}
	return s, nil
}
