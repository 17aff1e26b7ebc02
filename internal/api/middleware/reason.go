package middleware

// Reason codes passed as query parameters from the middleware to the entry
// page, which maps each to a localized explanation. Closed vocabulary.
const (
	ReasonLoginRequired        = "login_required"
	ReasonSessionExpired       = "session_expired"
	ReasonInvalidSession       = "invalid_session"
	ReasonAccessDenied         = "access_denied"
	ReasonDoctorAccessRequired = "doctor_access_required"
	ReasonAdminAccessRequired  = "admin_access_required"
)

// EntryPath is the generic entry (login/signup) page every unauthorized
// request is sent back to.
const EntryPath = "/assessment"
