package domain

import (
	"fmt"
	"regexp"
)

// LoginStage names the variant of a LoginFlowState.
type LoginStage string

const (
	StageCredentials    LoginStage = "credentials"
	StageOtpPending     LoginStage = "otp_pending"
	StageForgotPassword LoginStage = "forgot_password"
)

const (
	msgInvalidLogin     = "Please enter a valid email and password."
	msgInvalidOTP       = "Please enter the 6-digit code."
	msgInvalidResetMail = "Please enter a valid email."
	otpLength           = 6
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool { return emailPattern.MatchString(s) }

// LoginFlowState is the tagged union Credentials | OtpPending | ForgotPassword.
// The unexported marker keeps the set closed, so "forgot password" and
// "OTP pending" can never be active at the same time.
type LoginFlowState interface {
	Stage() LoginStage
	loginFlowState()
}

// Credentials is the initial state: the email/password form.
type Credentials struct{}

// OtpPending waits for the one-time code sent to Email. Code holds the last
// rejected entry and is cleared by a resend.
type OtpPending struct {
	Email string
	Code  string
}

// ForgotPassword is the reset-link form. Email is the last submitted address.
type ForgotPassword struct {
	Email string
}

func (Credentials) Stage() LoginStage    { return StageCredentials }
func (OtpPending) Stage() LoginStage     { return StageOtpPending }
func (ForgotPassword) Stage() LoginStage { return StageForgotPassword }

func (Credentials) loginFlowState()    {}
func (OtpPending) loginFlowState()     {}
func (ForgotPassword) loginFlowState() {}

// CredentialMatch is the result of looking a submitted email up in the
// credential store.
type CredentialMatch int

const (
	CredentialAbsent CredentialMatch = iota
	CredentialMatched
	CredentialMismatched
)

// MatchCredential compares a submitted password with a stored entry.
func MatchCredential(stored string, found bool, submitted string) CredentialMatch {
	switch {
	case !found:
		return CredentialAbsent
	case stored == submitted:
		return CredentialMatched
	default:
		return CredentialMismatched
	}
}

// StartLoginFlow is the state of a freshly opened login dialog.
func StartLoginFlow() LoginFlowState { return Credentials{} }

// SubmitCredentials advances Credentials to OtpPending. Any well-formed
// email with a non-empty password is accepted unless the store holds a
// different password for that email.
func SubmitCredentials(s LoginFlowState, email, password string, match CredentialMatch) (LoginFlowState, *Notice, error) {
	if _, ok := s.(Credentials); !ok {
		return s, nil, invalidTransition(s, "submit credentials")
	}
	if !ValidEmail(email) || password == "" {
		return s, nil, newValidationError(msgInvalidLogin)
	}
	if match == CredentialMismatched {
		return s, nil, ErrCredentialMismatch
	}
	n := NewOTPNotice(email)
	return OtpPending{Email: email}, &n, nil
}

// VerifyOTP accepts any string of exactly six ASCII digits. No code is ever
// issued, so this is a demo control and not a real second factor. On
// success the flow is discarded and a fresh Credentials state is returned.
func VerifyOTP(s LoginFlowState, code string) (next LoginFlowState, succeeded bool, err error) {
	p, ok := s.(OtpPending)
	if !ok {
		return s, false, invalidTransition(s, "verify otp")
	}
	if !isOTP(code) {
		p.Code = code
		return p, false, newValidationError(msgInvalidOTP)
	}
	return StartLoginFlow(), true, nil
}

// ResendOTP re-issues the simulated notice and clears the entered code.
func ResendOTP(s LoginFlowState) (LoginFlowState, *Notice, error) {
	p, ok := s.(OtpPending)
	if !ok {
		return s, nil, invalidTransition(s, "resend otp")
	}
	n := NewOTPNotice(p.Email)
	return OtpPending{Email: p.Email}, &n, nil
}

// RequestForgotPassword switches from the login form to the reset form.
func RequestForgotPassword(s LoginFlowState) (LoginFlowState, error) {
	if _, ok := s.(Credentials); !ok {
		return s, invalidTransition(s, "request forgot password")
	}
	return ForgotPassword{}, nil
}

// SubmitForgotPassword stays in ForgotPassword and reports whether a reset
// link would have been sent.
func SubmitForgotPassword(s LoginFlowState, email string, exists bool) (LoginFlowState, *Notice, error) {
	if _, ok := s.(ForgotPassword); !ok {
		return s, nil, invalidTransition(s, "submit forgot password")
	}
	if !ValidEmail(email) {
		return s, nil, newValidationError(msgInvalidResetMail)
	}
	next := ForgotPassword{Email: email}
	if !exists {
		return next, nil, ErrAccountNotFound
	}
	n := NewResetLinkNotice(email)
	return next, &n, nil
}

// Back leaves the reset form and clears every entered value.
func Back(s LoginFlowState) (LoginFlowState, error) {
	if _, ok := s.(ForgotPassword); !ok {
		return s, invalidTransition(s, "back")
	}
	return StartLoginFlow(), nil
}

func isOTP(code string) bool {
	if len(code) != otpLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return true
}

func invalidTransition(s LoginFlowState, action string) error {
	return fmt.Errorf("%w: cannot %s from %s", ErrInvalidTransition, action, s.Stage())
}
