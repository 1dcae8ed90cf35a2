package domain

import "time"

type InterestStatus string

const (
	InterestPending  InterestStatus = "pending"
	InterestAccepted InterestStatus = "accepted"
	InterestDeclined InterestStatus = "declined"
)

// Interest is a one-directional expression of interest from sender to
// receiver. A pair of interests where the reverse one is accepted
// forms a connection.
type Interest struct {
	ID         string         `json:"id" db:"id"`
	SenderID   string         `json:"sender_id" db:"sender_id"`
	ReceiverID string         `json:"receiver_id" db:"receiver_id"`
	Status     InterestStatus `json:"status" db:"status"`
	Note       *string        `json:"note,omitempty" db:"note"`
	CreatedAt  time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at" db:"updated_at"`
}

func (i *Interest) IsAccepted() bool {
	return i.Status == InterestAccepted
}
