package services

import (
	"strings"
	"time"

	"techscene/internal/domain"
)

// splitTags splits a comma-separated field into trimmed, non-empty values.
func splitTags(raw string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// optionalText maps a blank value to nil so storage keeps "not provided" distinct from "".
func optionalText(raw string) *string {
	v := strings.TrimSpace(raw)
	if v == "" {
		return nil
	}
	return &v
}

// NormalizeEventSubmission builds a pending event from a raw submission.
// Any approval state supplied by the caller is discarded. No field validation is done here.
func NormalizeEventSubmission(raw domain.EventSubmission, now time.Time) *domain.Event {
	source := domain.EventSource(strings.TrimSpace(raw.Source))
	if source == "" {
		source = domain.EventSourceManual
	}
	return &domain.Event{
		Title:           strings.TrimSpace(raw.Title),
		Description:     strings.TrimSpace(raw.Description),
		Date:            strings.TrimSpace(raw.Date),
		StartTime:       strings.TrimSpace(raw.StartTime),
		EndTime:         optionalText(raw.EndTime),
		Venue:           strings.TrimSpace(raw.Venue),
		Location:        strings.TrimSpace(raw.Location),
		Type:            domain.EventType(strings.TrimSpace(raw.Type)),
		Topics:          splitTags(raw.Topics),
		HostName:        strings.TrimSpace(raw.HostName),
		RegistrationURL: optionalText(raw.RegistrationURL),
		ImageURL:        optionalText(raw.ImageURL),
		Source:          source,
		CreatedAt:       now,
		ApprovalStatus:  domain.ApprovalPending,
		ApprovedAt:      nil,
	}
}

// NormalizePersonSubmission builds a pending profile from a raw submission.
// Any approval state supplied by the caller is discarded. No field validation is done here.
func NormalizePersonSubmission(raw domain.PersonSubmission, now time.Time) *domain.Person {
	openToConnect := true
	if raw.OpenToConnect != nil {
		openToConnect = *raw.OpenToConnect
	}
	return &domain.Person{
		Name:           strings.TrimSpace(raw.Name),
		Bio:            optionalText(raw.Bio),
		Building:       optionalText(raw.Building),
		Role:           domain.Role(strings.TrimSpace(raw.Role)),
		Company:        optionalText(raw.Company),
		Interests:      splitTags(raw.Interests),
		Twitter:        optionalText(raw.Twitter),
		LinkedIn:       optionalText(raw.LinkedIn),
		Website:        optionalText(raw.Website),
		AvatarURL:      optionalText(raw.AvatarURL),
		Location:       optionalText(raw.Location),
		Communities:    splitTags(raw.Communities),
		OpenToConnect:  openToConnect,
		CreatedAt:      now,
		ApprovalStatus: domain.ApprovalPending,
		ApprovedAt:     nil,
	}
}
