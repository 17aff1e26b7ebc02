package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/afyakuu/platform-api/internal/api/middleware"
)

// EntryHandler serves the entry (login/signup) page data. It maps the reason
// codes attached by the middleware to localized explanations; the client
// displays the message once and strips the parameters from the URL so the
// message does not reappear on refresh or back-navigation.
type EntryHandler struct{}

func NewEntryHandler() *EntryHandler {
	return &EntryHandler{}
}

// entryMessages maps each reason code to English and Swahili explanations.
var entryMessages = map[string]map[string]string{
	middleware.ReasonLoginRequired: {
		"en": "Please log in to access this page.",
		"sw": "Tafadhali ingia ili kufikia ukurasa huu.",
	},
	middleware.ReasonSessionExpired: {
		"en": "Your session has expired. Please log in again.",
		"sw": "Muda wa kipindi chako umeisha. Tafadhali ingia tena.",
	},
	middleware.ReasonInvalidSession: {
		"en": "Your session could not be verified. Please log in again.",
		"sw": "Kipindi chako hakikuweza kuthibitishwa. Tafadhali ingia tena.",
	},
	middleware.ReasonAccessDenied: {
		"en": "You do not have access to that page.",
		"sw": "Huna ruhusa ya kufikia ukurasa huo.",
	},
	middleware.ReasonDoctorAccessRequired: {
		"en": "That page is reserved for doctors.",
		"sw": "Ukurasa huo umetengwa kwa madaktari.",
	},
	middleware.ReasonAdminAccessRequired: {
		"en": "That page is reserved for administrators.",
		"sw": "Ukurasa huo umetengwa kwa wasimamizi.",
	},
}

type entryResponse struct {
	Message     string `json:"message,omitempty"`
	Error       string `json:"error,omitempty"`
	Redirect    string `json:"redirect,omitempty"`
	ClearParams bool   `json:"clear_params"`
}

// Show resolves the reason code query parameters into a displayable message.
//
// @Summary      Entry page data with localized authorization messages
// @Tags         entry
// @Produce      json
// @Param        message  query  string  false  "Reason code"
// @Param        error    query  string  false  "Error code"
// @Param        lang     query  string  false  "Language (en or sw)"
// @Success      200  {object}  entryResponse
// @Router       /assessment [get]
func (h *EntryHandler) Show(c echo.Context) error {
	lang := c.QueryParam("lang")
	if lang != "sw" {
		lang = "en"
	}

	resp := entryResponse{
		Error:    c.QueryParam("error"),
		Redirect: c.QueryParam("redirect"),
	}
	if code := c.QueryParam("message"); code != "" {
		if byLang, ok := entryMessages[code]; ok {
			resp.Message = byLang[lang]
		}
		// the client must strip the parameters after showing the message
		resp.ClearParams = true
	}
	return c.JSON(http.StatusOK, resp)
}
