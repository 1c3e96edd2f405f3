package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pliablepixels/zmng/internal/client/models"
	"github.com/pliablepixels/zmng/internal/client/transport"
)

// MonitorService lists cameras and fetches still snapshots.
type MonitorService interface {
	List(ctx context.Context) ([]models.MonitorItem, error)
	Snapshot(ctx context.Context, monitorID string) (*transport.Blob, error)
}

type monitorService struct {
	client     APIClient
	cgiBaseURL string
}

// NewMonitorService constructs a MonitorService. cgiBaseURL is the
// streaming endpoint base from the active connection profile.
func NewMonitorService(client APIClient, cgiBaseURL string) MonitorService {
	return &monitorService{client: client, cgiBaseURL: cgiBaseURL}
}

func (s *monitorService) List(ctx context.Context) ([]models.MonitorItem, error) {
	resp, err := s.client.Get(ctx, "/monitors.json", nil)
	if err != nil {
		return nil, fmt.Errorf("listing monitors: %w", err)
	}

	var envelope struct {
		Monitors []models.MonitorItem `json:"monitors"`
	}
	if err := decode(resp.Data, &envelope); err != nil {
		return nil, err
	}
	return envelope.Monitors, nil
}

// Snapshot fetches a single frame from the streaming CGI. The CGI lives on
// its own base URL, so the descriptor carries an absolute path, which the
// transport uses verbatim.
func (s *monitorService) Snapshot(ctx context.Context, monitorID string) (*transport.Blob, error) {
	d := &transport.Descriptor{
		Method: http.MethodGet,
		Path:   s.cgiBaseURL + "/nph-zms",
		Params: map[string]string{
			"mode":    "single",
			"monitor": monitorID,
			"scale":   "100",
		},
		ResponseType: transport.ResponseBlob,
	}

	resp, err := s.client.Do(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("fetching snapshot for monitor %s: %w", monitorID, err)
	}

	blob, ok := resp.Data.(*transport.Blob)
	if !ok {
		return nil, fmt.Errorf("snapshot for monitor %s: unexpected body shape %T", monitorID, resp.Data)
	}
	return blob, nil
}
