package service

import (
	"context"

	"github.com/google/uuid"

	"bizhub-backend/internal/models"
	"bizhub-backend/pkg/logger"
)

// LogPublisher is the default delivery backend. It accepts every post and
// logs it instead of calling a network API, which keeps the assistant usable
// without platform credentials.
type LogPublisher struct{}

func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

func (p *LogPublisher) Publish(_ context.Context, post *models.SocialPost) (string, error) {
	externalID := uuid.New().String()
	logger.Info("Publishing social post", map[string]interface{}{
		"post_id":     post.ID,
		"network":     post.Network,
		"external_id": externalID,
	})
	return externalID, nil
}
