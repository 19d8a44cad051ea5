package models

import "time"

// Reaction is an emoji reaction on a key result. The
// (key_result_id, user_id, emoji) triple is unique.
type Reaction struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	KeyResultID uint64    `gorm:"not null;uniqueIndex:uq_reaction" json:"key_result_id"`
	UserID      uint64    `gorm:"not null;uniqueIndex:uq_reaction" json:"user_id"`
	Emoji       string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_reaction" json:"emoji"`
	CreatedAt   time.Time `json:"created_at"`

	// Relations
	KeyResult *KeyResult `gorm:"foreignKey:KeyResultID;constraint:OnDelete:CASCADE" json:"key_result,omitempty"`
	User      *User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}
