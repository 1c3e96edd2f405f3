package services

import (
	"context"
	"fmt"

	"github.com/pliablepixels/zmng/internal/client/models"
	"github.com/pliablepixels/zmng/internal/client/session"
)

// HostService covers server-level operations: authentication and health.
type HostService interface {
	Login(ctx context.Context, username, password string) (*session.Grant, error)
	Logout(ctx context.Context) error
	Version(ctx context.Context) (*models.Version, error)
	DaemonRunning(ctx context.Context) (bool, error)
}

type hostService struct {
	client APIClient
}

func NewHostService(client APIClient) HostService {
	return &hostService{client: client}
}

func (s *hostService) Login(ctx context.Context, username, password string) (*session.Grant, error) {
	return s.client.Login(ctx, username, password)
}

func (s *hostService) Logout(ctx context.Context) error {
	return s.client.Logout(ctx)
}

func (s *hostService) Version(ctx context.Context) (*models.Version, error) {
	resp, err := s.client.Get(ctx, "/host/getVersion.json", nil)
	if err != nil {
		return nil, fmt.Errorf("fetching server version: %w", err)
	}

	version := &models.Version{}
	if err := decode(resp.Data, version); err != nil {
		return nil, err
	}
	return version, nil
}

func (s *hostService) DaemonRunning(ctx context.Context) (bool, error) {
	resp, err := s.client.Get(ctx, "/host/daemonCheck.json", nil)
	if err != nil {
		return false, fmt.Errorf("checking capture daemon: %w", err)
	}

	status := &models.DaemonStatus{}
	if err := decode(resp.Data, status); err != nil {
		return false, err
	}
	return status.Result == 1, nil
}
