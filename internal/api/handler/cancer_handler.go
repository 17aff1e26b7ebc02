package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/afyakuu/platform-api/internal/core/domain"
	"github.com/afyakuu/platform-api/internal/core/service"
)

// CancerHandler exposes examination results with FIGO staging and the
// staging reference.
type CancerHandler struct {
	cancer *service.CancerService
}

func NewCancerHandler(cancer *service.CancerService) *CancerHandler {
	return &CancerHandler{cancer: cancer}
}

type clinicalFindingsRequest struct {
	LesionSize             string `json:"lesion_size"`
	LesionLocation         string `json:"lesion_location"`
	LymphNodeInvolvement   bool   `json:"lymph_node_involvement"`
	ParametrialInvolvement bool   `json:"parametrial_involvement"`
	VaginalInvolvement     bool   `json:"vaginal_involvement"`
	BladderInvolvement     bool   `json:"bladder_involvement"`
	RectalInvolvement      bool   `json:"rectal_involvement"`
	DistantMetastasis      bool   `json:"distant_metastasis"`
}

func (r clinicalFindingsRequest) toDomain() domain.ClinicalFindings {
	return domain.ClinicalFindings{
		LesionSize:             r.LesionSize,
		LesionLocation:         r.LesionLocation,
		LymphNodeInvolvement:   r.LymphNodeInvolvement,
		ParametrialInvolvement: r.ParametrialInvolvement,
		VaginalInvolvement:     r.VaginalInvolvement,
		BladderInvolvement:     r.BladderInvolvement,
		RectalInvolvement:      r.RectalInvolvement,
		DistantMetastasis:      r.DistantMetastasis,
	}
}

type treatmentPlanRequest struct {
	PrimaryTreatment     string   `json:"primary_treatment" validate:"required"`
	AdditionalTreatments []string `json:"additional_treatments"`
	FollowUpSchedule     string   `json:"follow_up_schedule"`
	ReferralRequired     bool     `json:"referral_required"`
	ReferralTo           string   `json:"referral_to"`
	Urgency              string   `json:"urgency" validate:"required,oneof=routine urgent emergency"`
}

type cancerResultRequest struct {
	PatientID        string                  `json:"patient_id" validate:"required"`
	TestDate         string                  `json:"test_date"`
	TestType         string                  `json:"test_type" validate:"required,oneof=pap_smear hpv_test colposcopy biopsy imaging"`
	Outcome          string                  `json:"outcome" validate:"required,oneof=normal abnormal positive negative inconclusive"`
	Details          string                  `json:"details" validate:"required"`
	CancerConfirmed  bool                    `json:"cancer_confirmed"`
	Stage            string                  `json:"stage"`
	StageDescription string                  `json:"stage_description"`
	ClinicalFindings clinicalFindingsRequest `json:"clinical_findings"`
	TreatmentPlan    treatmentPlanRequest    `json:"treatment_plan"`
	PathologyReport  string                  `json:"pathology_report"`
	RadiologyReport  string                  `json:"radiology_report"`
	Notes            string                  `json:"notes"`
}

// Record stores a new examination result for one of the doctor's patients.
//
// @Summary      Record a cancer result
// @Tags         cancer-results
// @Accept       json
// @Produce      json
// @Param        body  body      cancerResultRequest  true  "Result"
// @Success      201   {object}  domain.CancerResult
// @Failure      400   {object}  map[string]string
// @Router       /api/cancer-results [post]
func (h *CancerHandler) Record(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req cancerResultRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := service.CancerResultInput{
		DoctorID:         identity.ID,
		PatientID:        req.PatientID,
		Details:          req.Details,
		CancerConfirmed:  req.CancerConfirmed,
		StageDescription: req.StageDescription,
		ClinicalFindings: req.ClinicalFindings.toDomain(),
		PathologyReport:  req.PathologyReport,
		RadiologyReport:  req.RadiologyReport,
		Notes:            req.Notes,
	}

	if input.TestType, err = domain.ParseCancerTestType(req.TestType); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid test type")
	}
	if input.Outcome, err = domain.ParseCancerTestOutcome(req.Outcome); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid outcome")
	}
	if req.Stage != "" {
		if input.Stage, err = domain.ParseCancerStage(req.Stage); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid stage")
		}
	}
	if req.TestDate != "" {
		testDate, err := time.Parse(time.RFC3339, req.TestDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "test_date must be RFC3339")
		}
		input.TestDate = testDate
	}
	if input.TreatmentPlan, err = parseTreatmentPlan(req.TreatmentPlan); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid urgency")
	}

	result, err := h.cancer.Record(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, result)
}

// Update revises one of the doctor's recorded results.
//
// @Summary      Update a cancer result
// @Tags         cancer-results
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "Result ID"
// @Param        body  body  cancerResultRequest  true  "Result"
// @Success      200   {object}  domain.CancerResult
// @Failure      404   {object}  map[string]string
// @Router       /api/cancer-results/{id} [put]
func (h *CancerHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req cancerResultRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	update := service.CancerResultUpdate{
		Details:          req.Details,
		CancerConfirmed:  req.CancerConfirmed,
		StageDescription: req.StageDescription,
		ClinicalFindings: req.ClinicalFindings.toDomain(),
		PathologyReport:  req.PathologyReport,
		RadiologyReport:  req.RadiologyReport,
		Notes:            req.Notes,
	}

	if update.Outcome, err = domain.ParseCancerTestOutcome(req.Outcome); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid outcome")
	}
	if req.Stage != "" {
		if update.Stage, err = domain.ParseCancerStage(req.Stage); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid stage")
		}
	}
	if update.TreatmentPlan, err = parseTreatmentPlan(req.TreatmentPlan); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid urgency")
	}

	result, err := h.cancer.Update(c.Request().Context(), identity.ID, c.Param("id"), update)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

func parseTreatmentPlan(req treatmentPlanRequest) (domain.TreatmentPlan, error) {
	urgency, err := domain.ParseTreatmentUrgency(req.Urgency)
	if err != nil {
		return domain.TreatmentPlan{}, err
	}
	return domain.TreatmentPlan{
		PrimaryTreatment:     req.PrimaryTreatment,
		AdditionalTreatments: req.AdditionalTreatments,
		FollowUpSchedule:     req.FollowUpSchedule,
		ReferralRequired:     req.ReferralRequired,
		ReferralTo:           req.ReferralTo,
		Urgency:              urgency,
	}, nil
}

// List returns the doctor's recorded results.
//
// @Summary      List cancer results
// @Tags         cancer-results
// @Produce      json
// @Success      200  {array}  domain.CancerResult
// @Router       /api/cancer-results [get]
func (h *CancerHandler) List(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	results, err := h.cancer.ListByDoctor(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, results)
}

// ForPatient returns one patient's results recorded by the calling doctor.
//
// @Summary      List a patient's cancer results
// @Tags         cancer-results
// @Produce      json
// @Param        patient_id  path  string  true  "Patient ID"
// @Success      200  {array}  domain.CancerResult
// @Router       /api/patients/{patient_id}/cancer-results [get]
func (h *CancerHandler) ForPatient(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	results, err := h.cancer.ResultsForPatient(c.Request().Context(), identity.ID, c.Param("patient_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, results)
}

// Stats aggregates the doctor's recorded results.
//
// @Summary      Cancer result statistics
// @Tags         cancer-results
// @Produce      json
// @Success      200  {object}  domain.CancerStats
// @Router       /api/cancer-results/stats [get]
func (h *CancerHandler) Stats(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	stats, err := h.cancer.Stats(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Staging returns the full FIGO staging reference.
//
// @Summary      FIGO staging reference
// @Tags         cancer-results
// @Produce      json
// @Success      200  {object}  map[string]domain.StagingCriteria
// @Router       /api/staging [get]
func (h *CancerHandler) Staging(c echo.Context) error {
	return c.JSON(http.StatusOK, domain.StagingReference)
}

// StagingStage returns the reference entry for one stage.
//
// @Summary      Staging reference for one stage
// @Tags         cancer-results
// @Produce      json
// @Param        stage  path  string  true  "Stage key"
// @Success      200  {object}  domain.StagingCriteria
// @Failure      404  {object}  map[string]string
// @Router       /api/staging/{stage} [get]
func (h *CancerHandler) StagingStage(c echo.Context) error {
	stage, err := domain.ParseCancerStage(c.Param("stage"))
	if err != nil {
		return err
	}

	criteria, err := h.cancer.StagingInfo(stage)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, criteria)
}
