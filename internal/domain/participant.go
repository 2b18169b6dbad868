package domain

import "time"

type Attendance string

const (
	AttendancePending Attendance = "pending"
	AttendancePresent Attendance = "present"
	AttendanceAbsent  Attendance = "absent"
)

func (a Attendance) Valid() bool {
	switch a {
	case AttendancePending, AttendancePresent, AttendanceAbsent:
		return true
	}
	return false
}

// Participant is a confirmed team registration.
type Participant struct {
	ID              string     `json:"id"`
	EventID         string     `json:"event_id"`
	LeaderID        string     `json:"leader_id"`
	TeamName        string     `json:"team_name"`
	MemberIDs       []string   `json:"member_ids"`
	MemberNames     []string   `json:"member_names"`
	TeamSize        int        `json:"team_size"`
	AmountPaidInINR int64      `json:"amount_paid_in_inr"`
	PromoCode       string     `json:"promo_code,omitempty"`
	RequestID       string     `json:"request_id,omitempty"`
	Attendance      Attendance `json:"attendance"`
	CreatedAt       time.Time  `json:"created_at"`
}

type RegisterParticipantInput struct {
	EventID   string
	TeamName  string
	MemberIDs []string
	PromoCode string
}
