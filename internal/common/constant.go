package common

// Keys under which the client persists state in the local metadata store.
// Plain key-value entries, unversioned: loss or tampering only forces
// re-authentication or loss of an in-progress registration.
const (
	TokenKey                = "village_app_token"
	PendingRegistrationKey  = "pending_registration"
	RememberedIdentifierKey = "remembered_identifier"
)
