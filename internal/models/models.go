package models

// Submission is one contact-form payload. It lives for a single request.
type Submission struct {
	Name           string
	Email          string
	Subject        string
	Message        string
	RecaptchaToken string
}

// EmailDispatch is a single plain-text message handed to the mail relay.
type EmailDispatch struct {
	To      string
	Subject string
	Body    string
}
