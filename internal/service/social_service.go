package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bizhub-backend/internal/models"
	"bizhub-backend/internal/repository"
	"bizhub-backend/pkg/logger"
)

var (
	ErrPostNotFound       = errors.New("social post not found")
	ErrPostNotSchedulable = errors.New("post cannot be scheduled in the past")
)

// SocialPublisher is the delivery boundary for composed posts. The service
// never talks to a network API directly; it records outcomes the publisher
// reports back.
type SocialPublisher interface {
	Publish(ctx context.Context, post *models.SocialPost) (externalID string, err error)
}

// SocialService manages the social-media assistant: composing, scheduling
// and delivering posts, and recording the delivery outcome.
type SocialService struct {
	postRepo  repository.SocialPostRepository
	publisher SocialPublisher
}

func NewSocialService(postRepo repository.SocialPostRepository, publisher SocialPublisher) *SocialService {
	return &SocialService{postRepo: postRepo, publisher: publisher}
}

func (s *SocialService) Compose(post *models.SocialPost) error {
	if strings.TrimSpace(post.Network) == "" {
		return errors.New("post network is required")
	}
	if strings.TrimSpace(post.Caption) == "" && post.ImageURL == "" {
		return errors.New("post needs a caption or an image")
	}

	post.Status = models.SocialPostDraft
	if err := s.postRepo.Create(post); err != nil {
		return fmt.Errorf("failed to save post: %w", err)
	}
	return nil
}

func (s *SocialService) Update(post *models.SocialPost) error {
	if err := s.postRepo.Update(post); err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	return nil
}

func (s *SocialService) Delete(id uint) error {
	if _, err := s.postRepo.GetByID(id); err != nil {
		return ErrPostNotFound
	}
	return s.postRepo.Delete(id)
}

func (s *SocialService) GetByID(id uint) (*models.SocialPost, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

func (s *SocialService) GetByCompany(companyID uint) ([]models.SocialPost, error) {
	return s.postRepo.GetByCompany(companyID)
}

// Schedule queues a draft for future delivery.
func (s *SocialService) Schedule(id uint, at time.Time) (*models.SocialPost, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, ErrPostNotFound
	}
	if at.Before(time.Now()) {
		return nil, ErrPostNotSchedulable
	}

	post.Status = models.SocialPostScheduled
	post.ScheduledAt = &at
	if err := s.postRepo.Update(post); err != nil {
		return nil, fmt.Errorf("failed to schedule post: %w", err)
	}
	return post, nil
}

// PublishNow delivers a post immediately. Delivery failure is recorded on the
// post and surfaced; the post stays editable for a retry.
func (s *SocialService) PublishNow(ctx context.Context, id uint) (*models.SocialPost, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, ErrPostNotFound
	}

	return s.deliver(ctx, post)
}

// DeliverDue sends every scheduled post whose time has arrived. Failures are
// recorded per post and do not stop the batch.
func (s *SocialService) DeliverDue(ctx context.Context) (int, error) {
	due, err := s.postRepo.GetDueScheduled(time.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to load due posts: %w", err)
	}

	delivered := 0
	for i := range due {
		if _, err := s.deliver(ctx, &due[i]); err != nil {
			logger.Error(err, "Scheduled post delivery failed", map[string]interface{}{"post_id": due[i].ID})
			continue
		}
		delivered++
	}

	return delivered, nil
}

func (s *SocialService) deliver(ctx context.Context, post *models.SocialPost) (*models.SocialPost, error) {
	externalID, err := s.publisher.Publish(ctx, post)
	if err != nil {
		post.Status = models.SocialPostFailed
		post.LastError = err.Error()
		if updateErr := s.postRepo.Update(post); updateErr != nil {
			logger.Error(updateErr, "Failed to record delivery failure", map[string]interface{}{"post_id": post.ID})
		}
		return nil, err
	}

	now := time.Now()
	post.Status = models.SocialPostPublished
	post.PublishedAt = &now
	post.ExternalID = externalID
	post.LastError = ""
	if err := s.postRepo.Update(post); err != nil {
		return nil, fmt.Errorf("failed to record delivery: %w", err)
	}

	logger.Info("Social post delivered", map[string]interface{}{
		"post_id": post.ID,
		"network": post.Network,
	})

	return post, nil
}
