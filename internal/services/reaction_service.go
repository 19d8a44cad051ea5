package services

import (
	"github.com/yukikurage/okr-tracker-api/internal/dto"
	"github.com/yukikurage/okr-tracker-api/internal/models"
	"github.com/yukikurage/okr-tracker-api/internal/repository"
)

// Toggle outcomes
const (
	ReactionAdded   = "added"
	ReactionRemoved = "removed"
)

// ReactionService handles emoji reactions on key results
type ReactionService struct {
	reactionRepo repository.ReactionRepository
}

// NewReactionService creates a new ReactionService
func NewReactionService(reactionRepo repository.ReactionRepository) *ReactionService {
	return &ReactionService{reactionRepo: reactionRepo}
}

// Toggle removes the reaction when the exact triple exists, otherwise
// creates it. Concurrent identical toggles race; the unique constraint
// decides the loser, surfaced as a Conflict.
func (s *ReactionService) Toggle(keyResultID, userID uint64, emoji string) (string, *models.Reaction, error) {
	existing, err := s.reactionRepo.Find(keyResultID, userID, emoji)
	if err != nil {
		return "", nil, classify(err)
	}
	if existing != nil {
		if err := s.reactionRepo.Remove(keyResultID, userID, emoji); err != nil {
			return "", nil, classify(err)
		}
		return ReactionRemoved, nil, nil
	}
	reaction, err := s.reactionRepo.Add(keyResultID, userID, emoji)
	if err != nil {
		return "", nil, classify(err)
	}
	return ReactionAdded, reaction, nil
}

// Summary groups the key result's reactions by emoji, with reacting users
// ordered by reaction time.
func (s *ReactionService) Summary(keyResultID uint64) (*dto.ReactionSummaryDTO, error) {
	reactions, err := s.reactionRepo.ListForKeyResult(keyResultID)
	if err != nil {
		return nil, classify(err)
	}

	summary := &dto.ReactionSummaryDTO{
		KeyResultID: keyResultID,
		Total:       len(reactions),
		Emojis:      []dto.EmojiSummaryDTO{},
	}
	index := map[string]int{}
	for _, reaction := range reactions {
		i, ok := index[reaction.Emoji]
		if !ok {
			i = len(summary.Emojis)
			index[reaction.Emoji] = i
			summary.Emojis = append(summary.Emojis, dto.EmojiSummaryDTO{Emoji: reaction.Emoji})
		}
		summary.Emojis[i].Count++
		if reaction.User != nil {
			summary.Emojis[i].Users = append(summary.Emojis[i].Users, dto.ToUserDTO(*reaction.User))
		}
	}
	return summary, nil
}
