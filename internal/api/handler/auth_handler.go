package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/afyakuu/platform-api/internal/core/domain"
	"github.com/afyakuu/platform-api/internal/core/ports"
	"github.com/afyakuu/platform-api/internal/session"
)

// AuthHandler exposes signup, login and logout. It is the single writer of
// the session cookie: middleware only ever reads it.
type AuthHandler struct {
	authService ports.AuthService
	cookies     *session.CookieWriter
	codec       *session.TokenCodec
}

func NewAuthHandler(authService ports.AuthService, cookies *session.CookieWriter, codec *session.TokenCodec) *AuthHandler {
	return &AuthHandler{authService: authService, cookies: cookies, codec: codec}
}

type signupRequest struct {
	Email              string `json:"email" validate:"required,email"`
	Password           string `json:"password" validate:"required,min=6"`
	Role               string `json:"role" validate:"required,oneof=doctor admin"`
	HospitalName       string `json:"hospital_name,omitempty"`
	LicenseNumber      string `json:"license_number,omitempty"`
	BranchRegistration string `json:"branch_registration,omitempty"`
	AdminName          string `json:"admin_name,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=doctor admin"`
}

type authResponse struct {
	User *domain.Identity `json:"user"`
}

// Signup registers a new account and performs an implicit login.
//
// @Summary      Register a new doctor or admin account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return err
	}

	result, err := h.authService.Signup(c.Request().Context(), ports.SignupInput{
		Email:              req.Email,
		Secret:             req.Password,
		Role:               role,
		HospitalName:       req.HospitalName,
		LicenseNumber:      req.LicenseNumber,
		BranchRegistration: req.BranchRegistration,
		AdminName:          req.AdminName,
	})
	if err != nil {
		return err
	}

	// cookie is only written once the durable store accepted the session
	h.cookies.Write(c, result.Token)
	return c.JSON(http.StatusCreated, authResponse{User: result.Identity})
}

// Login authenticates against (email, password, role) and establishes the
// session in both mirrors.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return err
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password, role)
	if err != nil {
		return err
	}

	h.cookies.Write(c, result.Token)
	return c.JSON(http.StatusOK, authResponse{User: result.Identity})
}

// Logout clears both session mirrors. Always succeeds, even without a live
// session.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	// logout is reachable without a guard so that an expired or corrupt
	// cookie can still be cleared; only a decodable one maps to a store entry
	if token := session.ReadCookie(c); token != "" {
		if identity, err := h.codec.Decode(token); err == nil {
			if err := h.authService.Logout(c.Request().Context(), identity.ID); err != nil {
				return err
			}
		}
	}
	h.cookies.Expire(c)
	return c.JSON(http.StatusOK, map[string]string{"status": "logged_out"})
}

// Me returns the identity behind the current session.
//
// @Summary      Current session identity
// @Tags         auth
// @Produce      json
// @Success      200  {object}  authResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, authResponse{User: identity})
}
