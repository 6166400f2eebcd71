package domain

import "time"

// ApplicationStatus is the moderation state of a link application.
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusApproved ApplicationStatus = "approved"
	StatusRejected ApplicationStatus = "rejected"
)

// LinkApplication is a public suggestion for a new site.
//
// It is created pending and moves to approved or rejected exactly once.
// Records are never deleted.
type LinkApplication struct {
	// ─────────────────────────────
	// Identity
	// ─────────────────────────────

	// ID is generated on submission and independent of document positions.
	ID string `json:"id"`

	// ─────────────────────────────
	// Submitted content
	// ─────────────────────────────

	SiteName    string `json:"siteName"`
	SiteURL     string `json:"siteUrl"`
	SiteIcon    string `json:"siteIcon"`
	Description string `json:"description"`
	Contact     string `json:"contact"`

	// ─────────────────────────────
	// Moderation
	// ─────────────────────────────

	Status    ApplicationStatus `json:"status"`
	AppliedAt time.Time         `json:"appliedAt"`

	// ApprovedAt and ApprovedBy are stamped on both approval and rejection.
	ApprovedAt *time.Time `json:"approvedAt"`
	ApprovedBy *string    `json:"approvedBy"`
}

// Pending reports whether the application still awaits a decision.
func (a *LinkApplication) Pending() bool {
	return a.Status == StatusPending
}

// Decide moves a pending application to status and stamps who did it.
func (a *LinkApplication) Decide(status ApplicationStatus, by string, at time.Time) error {
	if !a.Pending() {
		return ErrAlreadyProcessed
	}
	a.Status = status
	a.ApprovedAt = &at
	a.ApprovedBy = &by
	return nil
}

// Site builds the site an approved application turns into.
func (a *LinkApplication) Site() Site {
	return Site{Name: a.SiteName, URL: a.SiteURL, Icon: a.SiteIcon}
}
