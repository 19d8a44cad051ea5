package dto

import (
	"time"

	"github.com/yukikurage/okr-tracker-api/internal/models"
)

// ReactionDTO represents a single emoji reaction
type ReactionDTO struct {
	ID          uint64    `json:"id"`
	KeyResultID uint64    `json:"key_result_id"`
	UserID      uint64    `json:"user_id"`
	Emoji       string    `json:"emoji"`
	CreatedAt   time.Time `json:"created_at"`
	User        *UserDTO  `json:"user,omitempty"`
}

// ToggleReactionRequest toggles the caller's reaction on a key result
type ToggleReactionRequest struct {
	Emoji string `json:"emoji" binding:"required,max=20"`
}

// ToggleReactionResponse reports the toggle outcome. Reaction is set only
// when the toggle created one.
type ToggleReactionResponse struct {
	Status   string       `json:"status"`
	Reaction *ReactionDTO `json:"reaction,omitempty"`
}

// EmojiSummaryDTO aggregates one emoji's reactions on a key result, users
// ordered by reaction time.
type EmojiSummaryDTO struct {
	Emoji string    `json:"emoji"`
	Count int       `json:"count"`
	Users []UserDTO `json:"users"`
}

// ReactionSummaryDTO is the full per-key-result reaction summary
type ReactionSummaryDTO struct {
	KeyResultID uint64            `json:"key_result_id"`
	Total       int               `json:"total"`
	Emojis      []EmojiSummaryDTO `json:"emojis"`
}

// ToReactionDTO converts a Reaction model, including the user when loaded
func ToReactionDTO(reaction models.Reaction) ReactionDTO {
	dto := ReactionDTO{
		ID:          reaction.ID,
		KeyResultID: reaction.KeyResultID,
		UserID:      reaction.UserID,
		Emoji:       reaction.Emoji,
		CreatedAt:   reaction.CreatedAt,
	}
	if reaction.User != nil {
		user := ToUserDTO(*reaction.User)
		dto.User = &user
	}
	return dto
}
