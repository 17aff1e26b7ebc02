package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/afyakuu/platform-api/internal/core/domain"
	"github.com/afyakuu/platform-api/internal/core/service"
)

// AssessmentHandler exposes risk assessments and patient records to doctors.
type AssessmentHandler struct {
	assessments *service.AssessmentService
}

func NewAssessmentHandler(assessments *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessments: assessments}
}

type assessRequest struct {
	PersonalInfo struct {
		FirstName        string `json:"first_name" validate:"required"`
		LastName         string `json:"last_name" validate:"required"`
		DateOfBirth      string `json:"date_of_birth"`
		Age              int    `json:"age" validate:"required,gt=0"`
		PhoneNumber      string `json:"phone_number" validate:"required"`
		Email            string `json:"email,omitempty"`
		Address          string `json:"address"`
		EmergencyContact string `json:"emergency_contact"`
		EmergencyPhone   string `json:"emergency_phone"`
	} `json:"personal_info"`
	MedicalHistory domain.MedicalHistory `json:"medical_history"`
}

// Assess runs a risk assessment and persists the resulting patient record.
//
// @Summary      Run a cervical cancer risk assessment
// @Tags         assessment
// @Accept       json
// @Produce      json
// @Param        body  body      assessRequest  true  "Questionnaire"
// @Success      201   {object}  domain.PatientRecord
// @Failure      400   {object}  map[string]string
// @Failure      503   {object}  map[string]string
// @Router       /api/assessments [post]
func (h *AssessmentHandler) Assess(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req assessRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	record, err := h.assessments.Assess(c.Request().Context(), service.AssessmentInput{
		DoctorID: identity.ID,
		PersonalInfo: domain.PersonalInfo{
			FirstName:        req.PersonalInfo.FirstName,
			LastName:         req.PersonalInfo.LastName,
			DateOfBirth:      req.PersonalInfo.DateOfBirth,
			Age:              req.PersonalInfo.Age,
			PhoneNumber:      req.PersonalInfo.PhoneNumber,
			Email:            req.PersonalInfo.Email,
			Address:          req.PersonalInfo.Address,
			EmergencyContact: req.PersonalInfo.EmergencyContact,
			EmergencyPhone:   req.PersonalInfo.EmergencyPhone,
		},
		MedicalHistory: req.MedicalHistory,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, record)
}

// ListPatients lists the calling doctor's patient summaries.
//
// @Summary      List patient summaries
// @Tags         patients
// @Produce      json
// @Success      200  {array}  domain.PatientSummary
// @Router       /api/patients [get]
func (h *AssessmentHandler) ListPatients(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	summaries, err := h.assessments.ListSummaries(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summaries)
}

// GetPatient returns one of the calling doctor's patient records.
//
// @Summary      Get a patient record
// @Tags         patients
// @Produce      json
// @Param        patient_id  path      string  true  "Patient ID"
// @Success      200  {object}  domain.PatientRecord
// @Failure      404  {object}  map[string]string
// @Router       /api/patients/{patient_id} [get]
func (h *AssessmentHandler) GetPatient(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	record, err := h.assessments.GetRecord(c.Request().Context(), identity.ID, c.Param("patient_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, record)
}

type followUpRequest struct {
	NextAppointment      string `json:"next_appointment,omitempty"`
	FollowUpInstructions string `json:"follow_up_instructions,omitempty"`
	Status               string `json:"status" validate:"required"`
}

// UpdateFollowUp replaces the follow-up block of a patient record.
//
// @Summary      Update a patient's follow-up
// @Tags         patients
// @Accept       json
// @Produce      json
// @Param        patient_id  path  string           true  "Patient ID"
// @Param        body        body  followUpRequest  true  "Follow-up"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/patients/{patient_id}/follow-up [put]
func (h *AssessmentHandler) UpdateFollowUp(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req followUpRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	status, err := domain.ParseFollowUpStatus(req.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid follow-up status")
	}

	err = h.assessments.UpdateFollowUp(c.Request().Context(), identity.ID, c.Param("patient_id"), domain.FollowUp{
		NextAppointment:      req.NextAppointment,
		FollowUpInstructions: req.FollowUpInstructions,
		Status:               status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "updated"})
}
