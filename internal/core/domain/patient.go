package domain

import "time"

// FollowUpStatus tracks a patient's follow-up appointment state.
type FollowUpStatus string

const (
	FollowUpPending   FollowUpStatus = "pending"
	FollowUpScheduled FollowUpStatus = "scheduled"
	FollowUpCompleted FollowUpStatus = "completed"
	FollowUpOverdue   FollowUpStatus = "overdue"
)

// ParseFollowUpStatus validates a raw follow-up status string.
func ParseFollowUpStatus(s string) (FollowUpStatus, error) {
	switch FollowUpStatus(s) {
	case FollowUpPending, FollowUpScheduled, FollowUpCompleted, FollowUpOverdue:
		return FollowUpStatus(s), nil
	default:
		return "", ErrInvalidInput
	}
}

// PersonalInfo holds patient demographics and contact details.
type PersonalInfo struct {
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	DateOfBirth      string `json:"date_of_birth"`
	Age              int    `json:"age"`
	PhoneNumber      string `json:"phone_number"`
	Email            string `json:"email,omitempty"`
	Address          string `json:"address"`
	EmergencyContact string `json:"emergency_contact"`
	EmergencyPhone   string `json:"emergency_phone"`
}

// MedicalHistory captures the screening questionnaire answers in the UI
// vocabulary, before any mapping to the model vocabulary.
type MedicalHistory struct {
	PreviousScreening      string   `json:"previous_screening"`
	HPVStatus              string   `json:"hpv_status"`
	Symptoms               string   `json:"symptoms"`
	PapSmearResult         string   `json:"pap_smear_result"`
	SmokingStatus          string   `json:"smoking_status"`
	STDHistory             string   `json:"std_history"`
	Region                 string   `json:"region"`
	InsuranceCovered       string   `json:"insurance_covered"`
	ScreeningTypeLast      string   `json:"screening_type_last"`
	SexualPartners         string   `json:"sexual_partners"`
	FirstSexualActivityAge string   `json:"first_sexual_activity_age"`
	RiskFactors            []string `json:"risk_factors,omitempty"`
}

// AssessmentResult is the persisted outcome of a risk assessment.
type AssessmentResult struct {
	RiskLevel       string    `json:"risk_level"`
	RiskPrediction  int       `json:"risk_prediction"`
	RiskPercentage  float64   `json:"risk_percentage"`
	RiskProbability float64   `json:"risk_probability"`
	Recommendation  string    `json:"recommendation"`
	AssessmentDate  time.Time `json:"assessment_date"`
	AssessedBy      string    `json:"assessed_by"`
}

// FollowUp tracks the next appointment for a patient.
type FollowUp struct {
	NextAppointment      string         `json:"next_appointment,omitempty"`
	FollowUpInstructions string         `json:"follow_up_instructions,omitempty"`
	Status               FollowUpStatus `json:"status"`
}

// PatientRecord is the aggregate created by a doctor for each assessed patient.
type PatientRecord struct {
	ID             string           `json:"id"`
	PatientID      string           `json:"patient_id"`
	PersonalInfo   PersonalInfo     `json:"personal_info"`
	MedicalHistory MedicalHistory   `json:"medical_history"`
	Assessment     AssessmentResult `json:"assessment"`
	FollowUp       FollowUp         `json:"follow_up"`
	CreatedBy      string           `json:"created_by"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// PatientSummary is the list view of a record.
type PatientSummary struct {
	ID             string `json:"id"`
	PatientID      string `json:"patient_id"`
	FullName       string `json:"full_name"`
	Age            int    `json:"age"`
	LastAssessment string `json:"last_assessment"`
	RiskLevel      string `json:"risk_level"`
	Status         string `json:"status"`
	PhoneNumber    string `json:"phone_number"`
}

// Summary projects the record into its list view.
func (r *PatientRecord) Summary() PatientSummary {
	return PatientSummary{
		ID:             r.ID,
		PatientID:      r.PatientID,
		FullName:       r.PersonalInfo.FirstName + " " + r.PersonalInfo.LastName,
		Age:            r.PersonalInfo.Age,
		LastAssessment: r.Assessment.AssessmentDate.Format(time.RFC3339),
		RiskLevel:      r.Assessment.RiskLevel,
		Status:         string(r.FollowUp.Status),
		PhoneNumber:    r.PersonalInfo.PhoneNumber,
	}
}
