package models

type Attendee struct {
	ID            int  `json:"id"`
	UserID        int  `json:"user_id"`
	EventID       int  `json:"event_id"`
	CheckInStatus bool `json:"check_in_status"`
}
