package postgres

import (
	"context"
	"fmt"

	"github.com/pribylovaa/benford-auth/internal/models"
)

// ListJobs возвращает все задачи, отсортированные по jobid.
func (s *Storage) ListJobs(ctx context.Context) ([]models.Job, error) {
	const op = "storage.postgres.ListJobs"

	query := `
		SELECT jobid, userid, status, originaldatafile, datafilekey, resultsfilekey
		FROM jobs
		ORDER BY jobid
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var jobs []models.Job
	for rows.Next() {
		var job models.Job
		if err := rows.Scan(
			&job.JobID,
			&job.UserID,
			&job.Status,
			&job.OriginalDataFile,
			&job.DataFileKey,
			&job.ResultsFileKey,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return jobs, nil
}
