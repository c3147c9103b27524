package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"bizhub-backend/internal/models"
)

type fakeSocialRepo struct {
	posts  map[uint]*models.SocialPost
	nextID uint
	due    []models.SocialPost
}

func newFakeSocialRepo() *fakeSocialRepo {
	return &fakeSocialRepo{posts: map[uint]*models.SocialPost{}, nextID: 1}
}

func (r *fakeSocialRepo) Create(post *models.SocialPost) error {
	post.ID = r.nextID
	r.nextID++
	copied := *post
	r.posts[post.ID] = &copied
	return nil
}

func (r *fakeSocialRepo) Update(post *models.SocialPost) error {
	copied := *post
	r.posts[post.ID] = &copied
	return nil
}

func (r *fakeSocialRepo) Delete(id uint) error {
	delete(r.posts, id)
	return nil
}

func (r *fakeSocialRepo) GetByID(id uint) (*models.SocialPost, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	copied := *p
	return &copied, nil
}

func (r *fakeSocialRepo) GetByCompany(companyID uint) ([]models.SocialPost, error) {
	return nil, nil
}

func (r *fakeSocialRepo) GetDueScheduled(now time.Time) ([]models.SocialPost, error) {
	return r.due, nil
}

type fakePublisher struct {
	publish func(post *models.SocialPost) (string, error)
	calls   int
}

func (p *fakePublisher) Publish(_ context.Context, post *models.SocialPost) (string, error) {
	p.calls++
	if p.publish != nil {
		return p.publish(post)
	}
	return "ext-1", nil
}

func TestComposeSetsDraftStatus(t *testing.T) {
	repo := newFakeSocialRepo()
	svc := NewSocialService(repo, &fakePublisher{})

	post := &models.SocialPost{CompanyID: 7, Network: "instagram", Caption: "Nueva promoción"}
	if err := svc.Compose(post); err != nil {
		t.Fatalf("Compose returned error: %v", err)
	}
	if post.Status != models.SocialPostDraft {
		t.Errorf("expected draft status, got %q", post.Status)
	}
}

func TestComposeRequiresNetworkAndBody(t *testing.T) {
	svc := NewSocialService(newFakeSocialRepo(), &fakePublisher{})

	if err := svc.Compose(&models.SocialPost{Caption: "sin red"}); err == nil {
		t.Error("expected error for missing network")
	}
	if err := svc.Compose(&models.SocialPost{Network: "facebook"}); err == nil {
		t.Error("expected error for post without caption or image")
	}
}

func TestScheduleRejectsPast(t *testing.T) {
	repo := newFakeSocialRepo()
	svc := NewSocialService(repo, &fakePublisher{})

	post := &models.SocialPost{Network: "instagram", Caption: "hola"}
	if err := svc.Compose(post); err != nil {
		t.Fatalf("Compose returned error: %v", err)
	}

	_, err := svc.Schedule(post.ID, time.Now().Add(-time.Hour))
	if !errors.Is(err, ErrPostNotSchedulable) {
		t.Fatalf("expected ErrPostNotSchedulable, got %v", err)
	}
}

func TestScheduleQueuesFutureDelivery(t *testing.T) {
	repo := newFakeSocialRepo()
	svc := NewSocialService(repo, &fakePublisher{})

	post := &models.SocialPost{Network: "instagram", Caption: "hola"}
	if err := svc.Compose(post); err != nil {
		t.Fatalf("Compose returned error: %v", err)
	}

	at := time.Now().Add(2 * time.Hour)
	scheduled, err := svc.Schedule(post.ID, at)
	if err != nil {
		t.Fatalf("Schedule returned error: %v", err)
	}
	if scheduled.Status != models.SocialPostScheduled {
		t.Errorf("expected scheduled status, got %q", scheduled.Status)
	}
	if scheduled.ScheduledAt == nil || !scheduled.ScheduledAt.Equal(at) {
		t.Errorf("scheduled time not recorded: %v", scheduled.ScheduledAt)
	}
}

func TestPublishNowRecordsDelivery(t *testing.T) {
	repo := newFakeSocialRepo()
	publisher := &fakePublisher{publish: func(*models.SocialPost) (string, error) {
		return "ig-42", nil
	}}
	svc := NewSocialService(repo, publisher)

	post := &models.SocialPost{Network: "instagram", Caption: "hola"}
	if err := svc.Compose(post); err != nil {
		t.Fatalf("Compose returned error: %v", err)
	}

	delivered, err := svc.PublishNow(context.Background(), post.ID)
	if err != nil {
		t.Fatalf("PublishNow returned error: %v", err)
	}
	if delivered.Status != models.SocialPostPublished {
		t.Errorf("expected published status, got %q", delivered.Status)
	}
	if delivered.ExternalID != "ig-42" {
		t.Errorf("expected external id ig-42, got %q", delivered.ExternalID)
	}
	if delivered.PublishedAt == nil {
		t.Error("expected published timestamp")
	}
}

func TestPublishNowRecordsFailure(t *testing.T) {
	repo := newFakeSocialRepo()
	publisher := &fakePublisher{publish: func(*models.SocialPost) (string, error) {
		return "", errors.New("network unreachable")
	}}
	svc := NewSocialService(repo, publisher)

	post := &models.SocialPost{Network: "facebook", Caption: "hola"}
	if err := svc.Compose(post); err != nil {
		t.Fatalf("Compose returned error: %v", err)
	}

	if _, err := svc.PublishNow(context.Background(), post.ID); err == nil {
		t.Fatal("expected delivery error")
	}

	stored, err := svc.GetByID(post.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if stored.Status != models.SocialPostFailed {
		t.Errorf("expected failed status, got %q", stored.Status)
	}
	if stored.LastError == "" {
		t.Error("expected last error to be recorded")
	}
}

func TestDeliverDueContinuesAfterFailure(t *testing.T) {
	repo := newFakeSocialRepo()
	publisher := &fakePublisher{publish: func(post *models.SocialPost) (string, error) {
		if post.ID == 1 {
			return "", errors.New("rejected")
		}
		return "ok", nil
	}}
	svc := NewSocialService(repo, publisher)

	past := time.Now().Add(-time.Minute)
	repo.due = []models.SocialPost{
		{ID: 1, Network: "instagram", Caption: "uno", Status: models.SocialPostScheduled, ScheduledAt: &past},
		{ID: 2, Network: "instagram", Caption: "dos", Status: models.SocialPostScheduled, ScheduledAt: &past},
	}
	for i := range repo.due {
		copied := repo.due[i]
		repo.posts[copied.ID] = &copied
	}
	repo.nextID = 3

	delivered, err := svc.DeliverDue(context.Background())
	if err != nil {
		t.Fatalf("DeliverDue returned error: %v", err)
	}
	if delivered != 1 {
		t.Errorf("expected 1 delivered post, got %d", delivered)
	}
	if publisher.calls != 2 {
		t.Errorf("expected both posts attempted, got %d calls", publisher.calls)
	}

	first, _ := svc.GetByID(1)
	if first.Status != models.SocialPostFailed {
		t.Errorf("expected first post failed, got %q", first.Status)
	}
	second, _ := svc.GetByID(2)
	if second.Status != models.SocialPostPublished {
		t.Errorf("expected second post published, got %q", second.Status)
	}
}
