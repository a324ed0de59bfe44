package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/janasiksha/jpk-web/internal/core/ports"
)

// LoginHandler drives the login dialog. Every endpoint answers with the
// resulting view so the client renders exactly one stage at a time.
type LoginHandler struct {
	login ports.LoginService
}

func NewLoginHandler(login ports.LoginService) *LoginHandler {
	return &LoginHandler{login: login}
}

type loginStep func(c echo.Context, sid string) (*ports.LoginView, error)

func (h *LoginHandler) run(c echo.Context, step loginStep) error {
	sid, err := ctxSessionID(c)
	if err != nil {
		return err
	}
	v, err := step(c, sid)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toLoginViewResponse(v))
}

// State returns the current login view.
//
// @Summary      Login dialog state
// @Tags         login
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  loginViewResponse
// @Router       /api/login [get]
func (h *LoginHandler) State(c echo.Context) error {
	return h.run(c, func(c echo.Context, sid string) (*ports.LoginView, error) {
		return h.login.State(c.Request().Context(), sid)
	})
}

// Open (re)opens the dialog on an empty credentials form.
//
// @Summary      Open login dialog
// @Tags         login
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  loginViewResponse
// @Router       /api/login/open [post]
func (h *LoginHandler) Open(c echo.Context) error {
	return h.run(c, func(c echo.Context, sid string) (*ports.LoginView, error) {
		return h.login.Open(c.Request().Context(), sid)
	})
}

// SubmitCredentials checks email and password and moves to OTP entry.
//
// @Summary      Submit credentials
// @Tags         login
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      credentialsRequest  true  "Email and password"
// @Success      200   {object}  loginViewResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/login/credentials [post]
func (h *LoginHandler) SubmitCredentials(c echo.Context) error {
	return h.run(c, func(c echo.Context, sid string) (*ports.LoginView, error) {
		var req credentialsRequest
		if err := c.Bind(&req); err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
		}
		return h.login.SubmitCredentials(c.Request().Context(), sid, req.Email, req.Password)
	})
}

// VerifyOTP accepts the one-time code.
//
// @Summary      Verify OTP
// @Tags         login
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      otpRequest  true  "Six digit code"
// @Success      200   {object}  loginViewResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/login/otp [post]
func (h *LoginHandler) VerifyOTP(c echo.Context) error {
	return h.run(c, func(c echo.Context, sid string) (*ports.LoginView, error) {
		var req otpRequest
		if err := c.Bind(&req); err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
		}
		return h.login.VerifyOTP(c.Request().Context(), sid, req.Code)
	})
}

// ResendOTP re-sends the simulated code.
//
// @Summary      Resend OTP
// @Tags         login
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  loginViewResponse
// @Failure      409  {object}  errorResponse
// @Router       /api/login/otp/resend [post]
func (h *LoginHandler) ResendOTP(c echo.Context) error {
	return h.run(c, func(c echo.Context, sid string) (*ports.LoginView, error) {
		return h.login.ResendOTP(c.Request().Context(), sid)
	})
}

// RequestForgotPassword switches to the reset form.
//
// @Summary      Forgot password
// @Tags         login
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  loginViewResponse
// @Failure      409  {object}  errorResponse
// @Router       /api/login/forgot [post]
func (h *LoginHandler) RequestForgotPassword(c echo.Context) error {
	return h.run(c, func(c echo.Context, sid string) (*ports.LoginView, error) {
		return h.login.RequestForgotPassword(c.Request().Context(), sid)
	})
}

// SubmitForgotPassword sends the simulated reset link.
//
// @Summary      Send reset link
// @Tags         login
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      forgotPasswordRequest  true  "Account email"
// @Success      200   {object}  loginViewResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/login/forgot/submit [post]
func (h *LoginHandler) SubmitForgotPassword(c echo.Context) error {
	return h.run(c, func(c echo.Context, sid string) (*ports.LoginView, error) {
		var req forgotPasswordRequest
		if err := c.Bind(&req); err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
		}
		return h.login.SubmitForgotPassword(c.Request().Context(), sid, req.Email)
	})
}

// Back leaves the reset form.
//
// @Summary      Back to login
// @Tags         login
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  loginViewResponse
// @Failure      409  {object}  errorResponse
// @Router       /api/login/back [post]
func (h *LoginHandler) Back(c echo.Context) error {
	return h.run(c, func(c echo.Context, sid string) (*ports.LoginView, error) {
		return h.login.Back(c.Request().Context(), sid)
	})
}

// CreateUser adds an entry to the credential map.
//
// @Summary      Create user
// @Tags         login
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "Username and password"
// @Success      201   {object}  messageResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/users [post]
func (h *LoginHandler) CreateUser(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := h.login.CreateUser(c.Request().Context(), req.Username, req.Password); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, messageResponse{Message: "User created successfully."})
}
