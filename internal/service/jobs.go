package service

import (
	"context"
	"fmt"

	"github.com/pribylovaa/benford-auth/internal/models"
)

// ListJobs возвращает все задачи из БД.
// Авторизацию вызова выполняет транспортный слой jobs-сервиса до обращения сюда.
func (s *Service) ListJobs(ctx context.Context) ([]models.Job, error) {
	const op = "service.jobs.ListJobs"

	jobs, err := s.storage.ListJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return jobs, nil
}
