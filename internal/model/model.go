package model

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Minutes is a session duration in whole minutes. Booking forms send it
// as a number or a numeric string; anything else decodes to 0, and
// negatives are clamped to 0.
type Minutes int

func (m *Minutes) UnmarshalJSON(b []byte) error {
	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		if n < 0 {
			n = 0
		}
		*m = Minutes(int(n))
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil && v > 0 {
			*m = Minutes(v)
			return nil
		}
	}
	*m = 0
	return nil
}

// Appointment is one requested counselling session. Date and StartTime
// stay as the raw "YYYY-MM-DD" / "HH:MM" strings the form submitted;
// they are resolved into instants at read time, never at rest.
type Appointment struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	FullName   string    `json:"fullName"`
	Date       string    `json:"date"`
	StartTime  string    `json:"startTime"`
	Duration   Minutes   `json:"duration"`
	Concern    string    `json:"concern"`
	Mode       string    `json:"mode"`
	Counsellor string    `json:"counsellor"`
	Completed  bool      `json:"completed"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Article struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	UID       string    `json:"uid,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
