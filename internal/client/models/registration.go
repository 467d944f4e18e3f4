package models

// Registration wizard stages. The wizard survives restarts: the stage is
// persisted together with the form data so a retry resumes at the first
// incomplete step instead of re-issuing step one.
const (
	// StageCaptured: form data collected, no backend account exists yet.
	StageCaptured = "captured"
	// StageRegistered: the account exists but the client never obtained a
	// token for it.
	StageRegistered = "registered"
	// StageAuthenticated: account exists and a token was obtained, but the
	// membership application was not submitted.
	StageAuthenticated = "authenticated"
)

// PendingRegistration holds registration fields captured before the backend
// account is durably created. It is persisted locally so the wizard survives
// a restart, and cleared once the account and its application both exist.
type PendingRegistration struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phone_number"`
	DateOfBirth string `json:"date_of_birth,omitempty"`

	// AttemptID identifies one logical register-and-apply attempt across
	// retries. Stage records the last completed step.
	AttemptID string `json:"attempt_id"`
	Stage     string `json:"stage"`
}

// MembershipApplication is the payload of PUT /members/apply.
type MembershipApplication struct {
	VillageID   int    `json:"village_id"`
	Address     string `json:"address"`
	Profession  string `json:"profession"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
}
