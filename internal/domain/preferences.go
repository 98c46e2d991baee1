package domain

// Preferences is the per-role profile record collected by the setup screen.
// A record held in the store is either complete (location and primary crop
// set) or the canonical empty record written by "skip". Absence from the
// store entirely is what forces the setup screen on next activation.
type Preferences struct {
	Location    string
	PrimaryCrop string
	LoadSize    string
	Urgency     Urgency
}

// EmptyPreferences returns the empty-but-present record saved when the user
// skips setup, so the next activation routes straight to the dashboard.
func EmptyPreferences() Preferences {
	return Preferences{Urgency: UrgencyNormal}
}

// IsComplete reports whether both required fields are set.
func (p Preferences) IsComplete() bool {
	return p.Location != "" && p.PrimaryCrop != ""
}

// IsProfileIncomplete reports whether the complete-profile prompt should be
// shown. It must be recomputed from the displayed preferences on every
// render; nil means the role was never configured.
func IsProfileIncomplete(p *Preferences) bool {
	return p == nil || p.Location == "" || p.PrimaryCrop == ""
}
