package services

import "time"

// ApprovalBuffer is how long an approved event stays hidden before it reaches the public feed.
const ApprovalBuffer = 20 * time.Hour

// IsPublishEligible reports whether an event approved at approvedAt may be listed at now.
// A nil approvedAt is never eligible. The comparison uses wall-clock readings only.
func IsPublishEligible(approvedAt *time.Time, now time.Time) bool {
	if approvedAt == nil {
		return false
	}
	return now.Round(0).Sub(approvedAt.Round(0)) >= ApprovalBuffer
}
