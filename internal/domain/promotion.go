package domain

import "time"

// Promotion status values derived from the validity window.
const (
	PromotionScheduled = "scheduled"
	PromotionActive    = "active"
	PromotionExpired   = "expired"
)

// Promotion is a voucher with a percentage discount and a validity window.
// Codes are matched case-sensitively.
type Promotion struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Percent     int       `json:"percent"`
	MinSubtotal int64     `json:"minSubtotal"`
	StartsAt    time.Time `json:"startsAt"`
	EndsAt      time.Time `json:"endsAt"`
	Redemptions int       `json:"redemptions"`
	CreatedAt   time.Time `json:"createdAt"`
}

// StatusAt derives the promotion status from its window. The window is the
// single source of truth; status is never stored.
func (p Promotion) StatusAt(now time.Time) string {
	switch {
	case now.Before(p.StartsAt):
		return PromotionScheduled
	case now.After(p.EndsAt):
		return PromotionExpired
	default:
		return PromotionActive
	}
}
