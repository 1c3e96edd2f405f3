package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pliablepixels/zmng/internal/client/models"
)

// EventService browses recorded events.
type EventService interface {
	// List returns one page of events, optionally filtered to a monitor.
	// monitorID may be empty; page is 1-based.
	List(ctx context.Context, monitorID string, page int) ([]models.EventItem, *models.Pagination, error)
	Delete(ctx context.Context, eventID string) error
}

type eventService struct {
	client APIClient
}

func NewEventService(client APIClient) EventService {
	return &eventService{client: client}
}

func (s *eventService) List(ctx context.Context, monitorID string, page int) ([]models.EventItem, *models.Pagination, error) {
	path := "/events/index.json"
	if monitorID != "" {
		// The server filters via path segments, CakePHP style.
		path = "/events/index/MonitorId:" + monitorID + ".json"
	}

	params := map[string]string{"sort": "StartTime", "direction": "desc"}
	if page > 0 {
		params["page"] = strconv.Itoa(page)
	}

	resp, err := s.client.Get(ctx, path, params)
	if err != nil {
		return nil, nil, fmt.Errorf("listing events: %w", err)
	}

	var envelope struct {
		Events     []models.EventItem `json:"events"`
		Pagination *models.Pagination `json:"pagination"`
	}
	if err := decode(resp.Data, &envelope); err != nil {
		return nil, nil, err
	}
	return envelope.Events, envelope.Pagination, nil
}

func (s *eventService) Delete(ctx context.Context, eventID string) error {
	if _, err := s.client.Delete(ctx, "/events/"+eventID+".json", nil); err != nil {
		return fmt.Errorf("deleting event %s: %w", eventID, err)
	}
	return nil
}
