package models

import "time"

// VerificationCode rows are append-only: a consumed code is never deleted or
// reissued, it just stops being spendable.
type VerificationCode struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Email     string     `gorm:"size:255;not null;index:idx_verification_email_code" json:"email"`
	Phone     string     `gorm:"size:50;not null" json:"phone"`
	Code      string     `gorm:"size:10;not null;index:idx_verification_email_code" json:"-"`
	Used      bool       `gorm:"not null;default:false" json:"used"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `json:"created_at"`
}

func (v *VerificationCode) Expired(now time.Time) bool {
	return now.After(v.ExpiresAt)
}
