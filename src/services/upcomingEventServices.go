package services

import (
	"context"
	"fmt"

	"github.com/CollegeSite/College-Backend/src/models"
	"gorm.io/datatypes"
)

type UpcomingEventStore interface {
	FindAllNewestFirst(ctx context.Context) ([]models.UpcomingEventModel, error)
	FindByID(ctx context.Context, id int) (*models.UpcomingEventModel, error)
	Create(ctx context.Context, event *models.UpcomingEventModel) error
	Save(ctx context.Context, event *models.UpcomingEventModel) error
	Delete(ctx context.Context, id int) error
}

type UpcomingEventService struct {
	store UpcomingEventStore
}

func NewUpcomingEventService(store UpcomingEventStore) *UpcomingEventService {
	return &UpcomingEventService{store: store}
}

func (s *UpcomingEventService) CreateEvent(ctx context.Context, subject, body string, links []string) (*models.UpcomingEventModel, error) {
	if subject == "" {
		return nil, fmt.Errorf("%w: subject is required", ErrValidation)
	}
	event := &models.UpcomingEventModel{
		Subject: subject,
		Body:    body,
		Links:   datatypes.NewJSONSlice(links),
	}
	if err := s.store.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *UpcomingEventService) UpdateEvent(ctx context.Context, id int, subject, body string, links []string) (*models.UpcomingEventModel, error) {
	event, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, fmt.Errorf("%w: event not found", ErrNotFound)
	}
	event.Subject = subject
	event.Body = body
	event.Links = datatypes.NewJSONSlice(links)
	if err := s.store.Save(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *UpcomingEventService) DeleteEvent(ctx context.Context, id int) error {
	event, err := s.store.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if event == nil {
		return fmt.Errorf("%w: event not found", ErrNotFound)
	}
	return s.store.Delete(ctx, id)
}

func (s *UpcomingEventService) GetAllEvents(ctx context.Context) ([]models.UpcomingEventModel, error) {
	return s.store.FindAllNewestFirst(ctx)
}
