package domain

// NoticeKind classifies simulated outbound messages.
type NoticeKind string

const (
	NoticeOTPSent       NoticeKind = "otp_sent"
	NoticeResetLinkSent NoticeKind = "reset_link_sent"
)

// Notice is a simulated message to a user. Nothing is actually delivered.
type Notice struct {
	Kind      NoticeKind `json:"kind"`
	Recipient string     `json:"recipient"`
	Message   string     `json:"message"`
}

func NewOTPNotice(email string) Notice {
	return Notice{Kind: NoticeOTPSent, Recipient: email, Message: "OTP sent to " + email}
}

func NewResetLinkNotice(email string) Notice {
	return Notice{Kind: NoticeResetLinkSent, Recipient: email, Message: "Password reset link sent to " + email}
}
