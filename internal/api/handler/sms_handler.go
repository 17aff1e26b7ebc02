package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/afyakuu/platform-api/internal/core/ports"
	"github.com/afyakuu/platform-api/internal/infrastructure/queue"
)

// SMSHandler exposes reminder sending. Synchronous sends go through the
// reminder service directly; scheduled batches are enqueued on the
// dispatcher so per-recipient ordering is preserved.
type SMSHandler struct {
	reminders  ports.ReminderService
	dispatcher *queue.Dispatcher
}

func NewSMSHandler(reminders ports.ReminderService, dispatcher *queue.Dispatcher) *SMSHandler {
	return &SMSHandler{reminders: reminders, dispatcher: dispatcher}
}

type sendSMSRequest struct {
	PhoneNumber     string `json:"phone_number" validate:"required"`
	Message         string `json:"message" validate:"required"`
	PatientID       string `json:"patient_id,omitempty"`
	AppointmentDate string `json:"appointment_date,omitempty"`
}

// Send delivers one reminder immediately.
//
// @Summary      Send an SMS reminder
// @Tags         sms
// @Accept       json
// @Produce      json
// @Param        body  body      sendSMSRequest  true  "Reminder"
// @Success      200   {object}  ports.SMSResult
// @Failure      400   {object}  map[string]string
// @Router       /api/sms/send [post]
func (h *SMSHandler) Send(c echo.Context) error {
	var req sendSMSRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.reminders.Send(c.Request().Context(), ports.ReminderInput{
		PhoneNumber:     req.PhoneNumber,
		Message:         req.Message,
		PatientID:       req.PatientID,
		AppointmentDate: req.AppointmentDate,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

type batchSMSRequest struct {
	Reminders []sendSMSRequest `json:"reminders" validate:"required,min=1,dive"`
}

// Enqueue schedules a batch of reminders for asynchronous delivery.
//
// @Summary      Enqueue a batch of SMS reminders
// @Tags         sms
// @Accept       json
// @Produce      json
// @Param        body  body      batchSMSRequest  true  "Reminders"
// @Success      202   {object}  map[string]int
// @Failure      400   {object}  map[string]string
// @Router       /api/sms/batch [post]
func (h *SMSHandler) Enqueue(c echo.Context) error {
	var req batchSMSRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	for _, r := range req.Reminders {
		h.dispatcher.Enqueue(ports.ReminderInput{
			PhoneNumber:     r.PhoneNumber,
			Message:         r.Message,
			PatientID:       r.PatientID,
			AppointmentDate: r.AppointmentDate,
		})
	}
	return c.JSON(http.StatusAccepted, map[string]int{"enqueued": len(req.Reminders)})
}
