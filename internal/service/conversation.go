package service

import (
	"context"
	"time"

	"astrid/internal/models"
	"astrid/internal/repository"
)

// maxHistoryEntries bounds the conversation log; the oldest exchange is
// evicted first.
const maxHistoryEntries = 20

type ConversationService struct {
	repo repository.ConversationRepo
}

func NewConversationService(repo repository.ConversationRepo) *ConversationService {
	return &ConversationService{repo: repo}
}

// Append records one exchange with the current timestamp, then trims the log
// back to the newest maxHistoryEntries.
func (s *ConversationService) Append(ctx context.Context, userMessage, botResponse string) error {
	e := models.ConversationEntry{
		Timestamp:   time.Now().UTC(),
		UserMessage: userMessage,
		BotResponse: botResponse,
	}
	if err := s.repo.Append(ctx, e); err != nil {
		return err
	}
	return s.repo.Trim(ctx, maxHistoryEntries)
}

// List returns the stored exchanges in insertion order.
func (s *ConversationService) List(ctx context.Context) ([]models.ConversationEntry, error) {
	return s.repo.List(ctx)
}

// Count reports the number of stored exchanges.
func (s *ConversationService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
