package domain

import "fmt"

// TestCategory groups screening, diagnostic, treatment and follow-up
// procedures in the cost catalog.
type TestCategory string

const (
	TestScreening  TestCategory = "screening"
	TestDiagnostic TestCategory = "diagnostic"
	TestTreatment  TestCategory = "treatment"
	TestFollowUp   TestCategory = "follow_up"
)

// ParseTestCategory validates a raw category string.
func ParseTestCategory(s string) (TestCategory, error) {
	switch TestCategory(s) {
	case TestScreening, TestDiagnostic, TestTreatment, TestFollowUp:
		return TestCategory(s), nil
	default:
		return "", ErrInvalidInput
	}
}

// TestCost is one entry in the Kenyan standard cost catalog. Cost is in
// whole Kenyan shillings.
type TestCost struct {
	Key         string       `json:"key"`
	TestName    string       `json:"test_name"`
	Cost        int          `json:"cost"`
	Description string       `json:"description"`
	Category    TestCategory `json:"category"`
	Duration    string       `json:"duration"`
	Preparation string       `json:"preparation,omitempty"`
}

// TestCostCatalog is the standard price list for cervical cancer screening,
// diagnostic, treatment and follow-up procedures in Kenya.
var TestCostCatalog = map[string]TestCost{
	"via_screening": {
		Key:         "via_screening",
		TestName:    "VIA Screening",
		Cost:        150,
		Description: "Visual Inspection with Acetic Acid, basic cervical cancer screening",
		Category:    TestScreening,
		Duration:    "15 minutes",
		Preparation: "No sexual intercourse 24 hours before test",
	},
	"vili_screening": {
		Key:         "vili_screening",
		TestName:    "VILI Screening",
		Cost:        200,
		Description: "Visual Inspection with Lugols Iodine, enhanced cervical screening",
		Category:    TestScreening,
		Duration:    "20 minutes",
		Preparation: "No sexual intercourse 24 hours before test",
	},
	"pap_smear": {
		Key:         "pap_smear",
		TestName:    "Pap Smear Test",
		Cost:        2800,
		Description: "Cervical cytology test for abnormal cells detection",
		Category:    TestScreening,
		Duration:    "10 minutes",
		Preparation: "No sexual intercourse, douching, or vaginal medications 48 hours before test",
	},
	"hpv_test": {
		Key:         "hpv_test",
		TestName:    "HPV DNA Test",
		Cost:        3500,
		Description: "High-risk HPV DNA detection test",
		Category:    TestScreening,
		Duration:    "10 minutes",
		Preparation: "No sexual intercourse 24 hours before test",
	},
	"colposcopy": {
		Key:         "colposcopy",
		TestName:    "Colposcopy Examination",
		Cost:        5500,
		Description: "Detailed examination of cervix using colposcope",
		Category:    TestDiagnostic,
		Duration:    "30 minutes",
		Preparation: "Schedule during non-menstrual period, no sexual intercourse 24 hours before",
	},
	"cervical_biopsy": {
		Key:         "cervical_biopsy",
		TestName:    "Cervical Biopsy",
		Cost:        4500,
		Description: "Tissue sample collection for histopathological examination",
		Category:    TestDiagnostic,
		Duration:    "20 minutes",
		Preparation: "Fasting not required, arrange transport home",
	},
	"endocervical_curettage": {
		Key:         "endocervical_curettage",
		TestName:    "Endocervical Curettage (ECC)",
		Cost:        3800,
		Description: "Sampling of endocervical canal tissue",
		Category:    TestDiagnostic,
		Duration:    "15 minutes",
		Preparation: "Pain medication may be taken 1 hour before procedure",
	},
	"pelvic_ultrasound": {
		Key:         "pelvic_ultrasound",
		TestName:    "Pelvic Ultrasound",
		Cost:        2500,
		Description: "Ultrasound examination of pelvic organs",
		Category:    TestDiagnostic,
		Duration:    "30 minutes",
		Preparation: "Full bladder required, drink 4 glasses of water 1 hour before",
	},
	"ct_pelvis": {
		Key:         "ct_pelvis",
		TestName:    "CT Scan Pelvis",
		Cost:        15000,
		Description: "Computed tomography scan of pelvic region",
		Category:    TestDiagnostic,
		Duration:    "45 minutes",
		Preparation: "Fasting 4 hours before, contrast may be used",
	},
	"mri_pelvis": {
		Key:         "mri_pelvis",
		TestName:    "MRI Pelvis",
		Cost:        25000,
		Description: "Magnetic resonance imaging of pelvic organs",
		Category:    TestDiagnostic,
		Duration:    "60 minutes",
		Preparation: "Remove all metal objects, inform about implants",
	},
	"cryotherapy": {
		Key:         "cryotherapy",
		TestName:    "Cryotherapy Treatment",
		Cost:        8000,
		Description: "Freezing treatment for precancerous cervical lesions",
		Category:    TestTreatment,
		Duration:    "20 minutes",
		Preparation: "Schedule during non-menstrual period, arrange transport",
	},
	"leep_procedure": {
		Key:         "leep_procedure",
		TestName:    "LEEP Procedure",
		Cost:        15000,
		Description: "Loop Electrosurgical Excision Procedure for cervical lesions",
		Category:    TestTreatment,
		Duration:    "30 minutes",
		Preparation: "Local anesthesia, arrange transport home",
	},
	"cone_biopsy": {
		Key:         "cone_biopsy",
		TestName:    "Cone Biopsy",
		Cost:        25000,
		Description: "Surgical removal of cone-shaped tissue from cervix",
		Category:    TestTreatment,
		Duration:    "45 minutes",
		Preparation: "General anesthesia, fasting 8 hours before",
	},
	"follow_up_pap": {
		Key:         "follow_up_pap",
		TestName:    "Follow-up Pap Smear",
		Cost:        2800,
		Description: "Post-treatment Pap smear for monitoring",
		Category:    TestFollowUp,
		Duration:    "10 minutes",
		Preparation: "No sexual intercourse 48 hours before test",
	},
	"follow_up_hpv": {
		Key:         "follow_up_hpv",
		TestName:    "Follow-up HPV Test",
		Cost:        3500,
		Description: "Post-treatment HPV testing for clearance",
		Category:    TestFollowUp,
		Duration:    "10 minutes",
		Preparation: "No sexual intercourse 24 hours before test",
	},
	"follow_up_colposcopy": {
		Key:         "follow_up_colposcopy",
		TestName:    "Follow-up Colposcopy",
		Cost:        5500,
		Description: "Post-treatment colposcopic examination",
		Category:    TestFollowUp,
		Duration:    "30 minutes",
		Preparation: "Schedule during non-menstrual period",
	},
}

// RecommendedTests maps a model risk level to the procedures a doctor should
// consider next. An unrecognized level falls back to basic VIA screening.
func RecommendedTests(riskLevel string) []string {
	switch riskLevel {
	case "LOW":
		return []string{"via_screening", "follow_up_pap"}
	case "MEDIUM":
		return []string{"pap_smear", "hpv_test", "follow_up_colposcopy"}
	case "HIGH":
		return []string{"colposcopy", "cervical_biopsy", "hpv_test", "pelvic_ultrasound"}
	default:
		return []string{"via_screening"}
	}
}

// FormatKES renders a shilling amount with a thousands separator, the way
// costs appear in reminder messages.
func FormatKES(amount int) string {
	s := fmt.Sprintf("%d", amount)
	if amount < 0 {
		return "KES -" + groupThousands(s[1:])
	}
	return "KES " + groupThousands(s)
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	grouped := make([]byte, 0, n+n/3)
	lead := n % 3
	if lead > 0 {
		grouped = append(grouped, digits[:lead]...)
	}
	for i := lead; i < n; i += 3 {
		if len(grouped) > 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, digits[i:i+3]...)
	}
	return string(grouped)
}
