package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type WelcomeMailData struct {
	FullName string `json:"fullName"`
}

type ResetPasswordMailData struct {
	FullName   string `json:"fullName"`
	OTP        string `json:"otp"`
	Expiration int    `json:"expiration"`
}

type ShiftResponseMailData struct {
	FullName string `json:"fullName"`
	Message  string `json:"message"`
}
