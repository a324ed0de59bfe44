package handler

import (
	"time"

	"github.com/janasiksha/jpk-web/internal/core/domain"
	"github.com/janasiksha/jpk-web/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Session ---

type sessionResponse struct {
	ID        string            `json:"id"`
	LoggedIn  bool              `json:"is_logged_in"`
	Email     string            `json:"email,omitempty"`
	Stage     domain.LoginStage `json:"login_stage"`
	History   []string          `json:"history,omitempty"`
	ExpiresAt time.Time         `json:"expires_at"`
}

type startSessionResponse struct {
	Token   string          `json:"token"`
	Session sessionResponse `json:"session"`
}

// --- Navigation ---

type navigateRequest struct {
	Target string `json:"target" validate:"required,max=64"`
}

type navigationResponse struct {
	Strategy string              `json:"strategy"`
	Target   string              `json:"target"`
	Decision domain.DecisionKind `json:"decision"`
	Section  domain.Section      `json:"section"`
	Path     string              `json:"path,omitempty"`
	Anchor   string              `json:"anchor,omitempty"`
	Scrolled bool                `json:"scrolled"`
}

type sectionsResponse struct {
	Sections []domain.Section `json:"sections"`
}

type decisionResponse struct {
	Decision domain.DecisionKind `json:"decision"`
	Section  *domain.Section     `json:"section,omitempty"`
	Location string              `json:"location,omitempty"`
}

// --- Login flow ---

// Field checks for the login dialog happen in the state machine so the
// user sees its messages; these requests carry no validate tags.

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type otpRequest struct {
	Code string `json:"code"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type createUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginViewResponse struct {
	Stage     domain.LoginStage `json:"stage"`
	Email     string            `json:"email,omitempty"`
	Code      string            `json:"code,omitempty"`
	Notice    *domain.Notice    `json:"notice,omitempty"`
	LoggedIn  bool              `json:"is_logged_in"`
	Succeeded bool              `json:"succeeded,omitempty"`
	Redirect  string            `json:"redirect,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Admin ---

type adminUserRequest struct {
	ID                   int    `json:"id"`
	Username             string `json:"username"                validate:"max=64"`
	Email                string `json:"email"                   validate:"omitempty,email"`
	Mobile               string `json:"mobile"                  validate:"omitempty,numeric,max=15"`
	FullName             string `json:"full_name"               validate:"max=128"`
	CCTVLink             string `json:"cctv_link"               validate:"omitempty,url"`
	IsAdmin              bool   `json:"is_admin"`
	IsActive             bool   `json:"is_active"`
	IsCCTVVisible        bool   `json:"is_cctv_visible"`
	IsCCTVStorageVisible bool   `json:"is_cctv_storage_visible"`
}

type usersResponse struct {
	Users []domain.MockUser `json:"users"`
}

type transactionsQuery struct {
	From  string `query:"from"  validate:"omitempty,datetime=2006-01-02"`
	To    string `query:"to"    validate:"omitempty,datetime=2006-01-02"`
	Range string `query:"range" validate:"omitempty,oneof=today yesterday last_week last_month last_365 last_fiscal_year"`
}

type transactionsResponse struct {
	Range        domain.DateRange         `json:"range"`
	Transactions []domain.MockTransaction `json:"transactions"`
}

// --- Donations ---

type donationRequest struct {
	Name    string `json:"name"    validate:"required,max=128"`
	Email   string `json:"email"   validate:"required,email"`
	Phone   string `json:"phone"   validate:"omitempty,numeric,max=15"`
	Amount  int64  `json:"amount"  validate:"gt=0"`
	Purpose string `json:"purpose" validate:"max=256"`
}

// --- CCTV ---

type cctvResponse struct {
	StreamURL string `json:"stream_url"`
}

func toSessionResponse(s *domain.Session) sessionResponse {
	return sessionResponse{
		ID:        s.ID,
		LoggedIn:  s.IsLoggedIn,
		Email:     s.Email,
		Stage:     s.LoginFlow().Stage(),
		History:   s.History,
		ExpiresAt: s.ExpiresAt,
	}
}

func toNavigationResponse(r *ports.NavigationResult) navigationResponse {
	return navigationResponse{
		Strategy: r.Strategy,
		Target:   r.Target,
		Decision: r.Decision,
		Section:  r.Section,
		Path:     r.Path,
		Anchor:   r.Anchor,
		Scrolled: r.Scrolled,
	}
}

func toLoginViewResponse(v *ports.LoginView) loginViewResponse {
	resp := loginViewResponse{
		Stage:     v.Stage,
		Email:     v.Email,
		Code:      v.Code,
		Notice:    v.Notice,
		LoggedIn:  v.LoggedIn,
		Succeeded: v.Succeeded,
	}
	if v.Succeeded {
		resp.Redirect = "/"
	}
	return resp
}

func (r adminUserRequest) toDomain() domain.MockUser {
	return domain.MockUser{
		ID:                   r.ID,
		Username:             r.Username,
		Email:                r.Email,
		Mobile:               r.Mobile,
		FullName:             r.FullName,
		CCTVLink:             r.CCTVLink,
		IsAdmin:              r.IsAdmin,
		IsActive:             r.IsActive,
		IsCCTVVisible:        r.IsCCTVVisible,
		IsCCTVStorageVisible: r.IsCCTVStorageVisible,
	}
}
