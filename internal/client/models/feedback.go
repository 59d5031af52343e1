package models

// Feedback is one submitted feedback message. Date is an RFC 3339 UTC
// timestamp.
type Feedback struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Message   string `json:"message"`
	Date      string `json:"date"`
	UserEmail string `json:"userEmail"`
}
