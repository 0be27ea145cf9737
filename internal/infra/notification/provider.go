package notification

import (
	"context"
	"log/slog"

	"hail/config"
	"hail/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopService drops notifications when Firebase is not configured.
type noopService struct {
	logger *slog.Logger
}

func (s *noopService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	s.logger.Debug("[NoopNotification] Push disabled, skipping", slog.String("title", title))

	return nil
}

func (s *noopService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (int, int, []string, error) {
	s.logger.Debug("[NoopNotification] Push disabled, skipping",
		slog.String("title", title),
		slog.Int("tokens", len(tokens)),
	)

	return 0, 0, nil, nil
}

// ServiceParams holds dependencies for NotificationService, injected by Fx
type ServiceParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotificationService creates a NotificationService based on configuration.
// Firebase is optional; without it pushes are dropped and logged.
func NewNotificationService(params ServiceParams) (service.NotificationService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Info("Firebase not configured, using no-op notification service")

		return &noopService{logger: params.Logger}, nil
	}

	svc, err := NewFirebaseService(params.Ctx, cfg.CredentialsPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase service")
	}

	return svc, nil
}
