package domain

import "time"

// CancerTestType identifies the examination a result came from.
type CancerTestType string

const (
	CancerTestPapSmear   CancerTestType = "pap_smear"
	CancerTestHPV        CancerTestType = "hpv_test"
	CancerTestColposcopy CancerTestType = "colposcopy"
	CancerTestBiopsy     CancerTestType = "biopsy"
	CancerTestImaging    CancerTestType = "imaging"
)

// ParseCancerTestType validates a raw test type string.
func ParseCancerTestType(s string) (CancerTestType, error) {
	switch CancerTestType(s) {
	case CancerTestPapSmear, CancerTestHPV, CancerTestColposcopy,
		CancerTestBiopsy, CancerTestImaging:
		return CancerTestType(s), nil
	default:
		return "", ErrInvalidInput
	}
}

// CancerTestOutcome is the interpreted outcome of an examination.
type CancerTestOutcome string

const (
	OutcomeNormal       CancerTestOutcome = "normal"
	OutcomeAbnormal     CancerTestOutcome = "abnormal"
	OutcomePositive     CancerTestOutcome = "positive"
	OutcomeNegative     CancerTestOutcome = "negative"
	OutcomeInconclusive CancerTestOutcome = "inconclusive"
)

// ParseCancerTestOutcome validates a raw outcome string.
func ParseCancerTestOutcome(s string) (CancerTestOutcome, error) {
	switch CancerTestOutcome(s) {
	case OutcomeNormal, OutcomeAbnormal, OutcomePositive,
		OutcomeNegative, OutcomeInconclusive:
		return CancerTestOutcome(s), nil
	default:
		return "", ErrInvalidInput
	}
}

// CancerStage is a FIGO stage recorded on a confirmed case.
type CancerStage string

const (
	Stage0  CancerStage = "stage_0"
	Stage1A CancerStage = "stage_1a"
	Stage1B CancerStage = "stage_1b"
	Stage2A CancerStage = "stage_2a"
	Stage2B CancerStage = "stage_2b"
	Stage3A CancerStage = "stage_3a"
	Stage3B CancerStage = "stage_3b"
	Stage4A CancerStage = "stage_4a"
	Stage4B CancerStage = "stage_4b"
)

// ParseCancerStage validates a raw stage string.
func ParseCancerStage(s string) (CancerStage, error) {
	switch CancerStage(s) {
	case Stage0, Stage1A, Stage1B, Stage2A, Stage2B,
		Stage3A, Stage3B, Stage4A, Stage4B:
		return CancerStage(s), nil
	default:
		return "", ErrUnknownStage
	}
}

// TreatmentUrgency ranks how fast a treatment plan must start.
type TreatmentUrgency string

const (
	UrgencyRoutine   TreatmentUrgency = "routine"
	UrgencyUrgent    TreatmentUrgency = "urgent"
	UrgencyEmergency TreatmentUrgency = "emergency"
)

// ParseTreatmentUrgency validates a raw urgency string.
func ParseTreatmentUrgency(s string) (TreatmentUrgency, error) {
	switch TreatmentUrgency(s) {
	case UrgencyRoutine, UrgencyUrgent, UrgencyEmergency:
		return TreatmentUrgency(s), nil
	default:
		return "", ErrInvalidInput
	}
}

// ClinicalFindings captures the examination observations behind a result.
type ClinicalFindings struct {
	LesionSize             string `json:"lesion_size,omitempty"`
	LesionLocation         string `json:"lesion_location,omitempty"`
	LymphNodeInvolvement   bool   `json:"lymph_node_involvement"`
	ParametrialInvolvement bool   `json:"parametrial_involvement"`
	VaginalInvolvement     bool   `json:"vaginal_involvement"`
	BladderInvolvement     bool   `json:"bladder_involvement"`
	RectalInvolvement      bool   `json:"rectal_involvement"`
	DistantMetastasis      bool   `json:"distant_metastasis"`
}

// TreatmentPlan is the doctor's plan attached to a result.
type TreatmentPlan struct {
	PrimaryTreatment     string           `json:"primary_treatment"`
	AdditionalTreatments []string         `json:"additional_treatments,omitempty"`
	FollowUpSchedule     string           `json:"follow_up_schedule,omitempty"`
	ReferralRequired     bool             `json:"referral_required"`
	ReferralTo           string           `json:"referral_to,omitempty"`
	Urgency              TreatmentUrgency `json:"urgency"`
}

// CancerResult is one recorded examination outcome for a patient, with
// staging and a treatment plan when cancer is confirmed.
type CancerResult struct {
	ID               string            `json:"id"`
	PatientID        string            `json:"patient_id"`
	DoctorID         string            `json:"doctor_id"`
	TestDate         time.Time         `json:"test_date"`
	TestType         CancerTestType    `json:"test_type"`
	Outcome          CancerTestOutcome `json:"outcome"`
	Details          string            `json:"details"`
	CancerConfirmed  bool              `json:"cancer_confirmed"`
	Stage            CancerStage       `json:"stage,omitempty"`
	StageDescription string            `json:"stage_description,omitempty"`
	ClinicalFindings ClinicalFindings  `json:"clinical_findings"`
	TreatmentPlan    TreatmentPlan     `json:"treatment_plan"`
	PathologyReport  string            `json:"pathology_report,omitempty"`
	RadiologyReport  string            `json:"radiology_report,omitempty"`
	Notes            string            `json:"notes,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// CancerStats aggregates a doctor's recorded results.
type CancerStats struct {
	TotalResults   int            `json:"total_results"`
	ConfirmedCases int            `json:"confirmed_cases"`
	RecentResults  int            `json:"recent_results"`
	ByStage        map[string]int `json:"by_stage"`
	ByTestType     map[string]int `json:"by_test_type"`
}

// StagingCriteria is the reference entry for one FIGO stage.
type StagingCriteria struct {
	Stage           string   `json:"stage"`
	Description     string   `json:"description"`
	Characteristics []string `json:"characteristics"`
	Treatment       []string `json:"treatment"`
	Prognosis       string   `json:"prognosis"`
}

// StagingReference is the FIGO staging reference shown alongside results.
var StagingReference = map[CancerStage]StagingCriteria{
	Stage0: {
		Stage:       "Stage 0 (Carcinoma in Situ)",
		Description: "Abnormal cells are found only in the innermost lining of the cervix",
		Characteristics: []string{
			"Pre-cancerous cells confined to surface layer",
			"No invasion into deeper tissues",
			"Also called cervical intraepithelial neoplasia (CIN) Grade 3",
		},
		Treatment: []string{
			"LEEP (Loop Electrosurgical Excision Procedure)",
			"Cone biopsy",
			"Cryotherapy",
			"Laser therapy",
		},
		Prognosis: "Excellent, nearly 100% cure rate with proper treatment",
	},
	Stage1A: {
		Stage:       "Stage IA",
		Description: "Very small amount of cancer that can only be seen under a microscope",
		Characteristics: []string{
			"Invasion at most 3mm deep and 7mm wide",
			"No lymph node involvement",
			"Microscopic invasion only",
		},
		Treatment: []string{
			"Simple hysterectomy",
			"Cone biopsy (for fertility preservation)",
			"Trachelectomy (radical cervical removal)",
		},
		Prognosis: "Excellent, 95-99% 5-year survival rate",
	},
	Stage1B: {
		Stage:       "Stage IB",
		Description: "Cancer is larger but still confined to the cervix",
		Characteristics: []string{
			"Invasion over 3mm deep or 7mm wide",
			"Visible lesion confined to cervix",
			"No parametrial involvement",
		},
		Treatment: []string{
			"Radical hysterectomy with lymph node dissection",
			"Radiation therapy with chemotherapy",
			"Trachelectomy (for fertility preservation in selected cases)",
		},
		Prognosis: "Good, 85-95% 5-year survival rate",
	},
	Stage2A: {
		Stage:       "Stage IIA",
		Description: "Cancer has spread beyond the cervix to the upper vagina",
		Characteristics: []string{
			"Extension to upper 2/3 of vagina",
			"No parametrial involvement",
			"No lower vaginal involvement",
		},
		Treatment: []string{
			"Radical hysterectomy with lymph node dissection",
			"Concurrent chemoradiation therapy",
			"External beam radiation + brachytherapy",
		},
		Prognosis: "Good, 75-85% 5-year survival rate",
	},
	Stage2B: {
		Stage:       "Stage IIB",
		Description: "Cancer has spread to the parametrial tissues",
		Characteristics: []string{
			"Parametrial involvement",
			"May involve upper vagina",
			"No pelvic wall involvement",
		},
		Treatment: []string{
			"Concurrent chemoradiation therapy",
			"External beam radiation + brachytherapy",
			"Cisplatin-based chemotherapy",
		},
		Prognosis: "Moderate, 65-75% 5-year survival rate",
	},
	Stage3A: {
		Stage:       "Stage IIIA",
		Description: "Cancer has spread to the lower third of the vagina",
		Characteristics: []string{
			"Extension to lower 1/3 of vagina",
			"May have parametrial involvement",
			"No pelvic wall involvement",
		},
		Treatment: []string{
			"Concurrent chemoradiation therapy",
			"External beam radiation + brachytherapy",
			"Cisplatin-based chemotherapy",
		},
		Prognosis: "Moderate, 45-55% 5-year survival rate",
	},
	Stage3B: {
		Stage:       "Stage IIIB",
		Description: "Cancer has spread to the pelvic wall or caused kidney problems",
		Characteristics: []string{
			"Extension to pelvic wall",
			"Hydronephrosis or non-functioning kidney",
			"May have positive pelvic lymph nodes",
		},
		Treatment: []string{
			"Concurrent chemoradiation therapy",
			"External beam radiation + brachytherapy",
			"Palliative care if needed",
		},
		Prognosis: "Guarded, 35-45% 5-year survival rate",
	},
	Stage4A: {
		Stage:       "Stage IVA",
		Description: "Cancer has spread to nearby organs",
		Characteristics: []string{
			"Extension to bladder or rectum",
			"Involvement of pelvic organs",
			"No distant metastasis",
		},
		Treatment: []string{
			"Concurrent chemoradiation therapy",
			"Palliative surgery if needed",
			"Supportive care",
		},
		Prognosis: "Poor, 15-25% 5-year survival rate",
	},
	Stage4B: {
		Stage:       "Stage IVB",
		Description: "Cancer has spread to distant parts of the body",
		Characteristics: []string{
			"Distant metastasis",
			"Involvement of distant organs",
			"Advanced disease",
		},
		Treatment: []string{
			"Palliative chemotherapy",
			"Radiation therapy for symptom control",
			"Supportive and palliative care",
		},
		Prognosis: "Poor, 5-15% 5-year survival rate",
	},
}
