package models

// ScheduleRequest is the payload coming from the frontend into /setresponse.
type ScheduleRequest struct {
	Message string `json:"message"` // user's free-text booking request
	Email   string `json:"email"`   // calendar identifier supplied by the client
}
