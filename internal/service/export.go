package service

import (
	"context"
	"fmt"

	"github.com/trailhead-app/trail-planner/internal/domain"
	"github.com/trailhead-app/trail-planner/internal/repo"
)

// ExportService assembles a flat export of all trips with their derived
// planning metrics.
type ExportService struct {
	repo repo.StateRepo
}

// NewExportService constructs an ExportService backed by the provided
// StateRepo.
func NewExportService(r repo.StateRepo) *ExportService {
	return &ExportService{repo: r}
}

// Export returns one ExportRow per trip, ordered by start date ascending
// (undated trips last). Always returns a non-nil slice.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	trips, _, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := make([]domain.ExportRow, 0, len(trips))
	for _, trip := range domain.SortTripsByStartDate(trips) {
		rows = append(rows, domain.ExportRowOf(trip))
	}
	return rows, nil
}
