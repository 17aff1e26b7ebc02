package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrLoginInFlight      = errors.New("login already in progress")

	ErrInvalidSession  = errors.New("invalid session")
	ErrSessionNotFound = errors.New("session not found")

	ErrForbidden    = errors.New("access forbidden")
	ErrInvalidInput = errors.New("invalid input")

	ErrPatientNotFound      = errors.New("patient record not found")
	ErrItemNotFound         = errors.New("inventory item not found")
	ErrFeedbackNotFound     = errors.New("feedback not found")
	ErrResourceNotFound     = errors.New("resource not found")
	ErrTestCostNotFound     = errors.New("test cost not found")
	ErrCancerResultNotFound = errors.New("cancer result not found")
	ErrUnknownStage         = errors.New("unknown cancer stage")

	ErrPredictionUnavailable = errors.New("prediction service unavailable")
	ErrSMSRejected           = errors.New("sms gateway rejected message")
	ErrInvalidPhoneNumber    = errors.New("invalid kenyan phone number")
)
