package services

import (
	"math"

	"task-manager/internal/domain"
)

// reportingServiceImpl implements the ReportingService interface
type reportingServiceImpl struct{}

// NewReportingService creates a new ReportingService instance
func NewReportingService() ReportingService {
	return &reportingServiceImpl{}
}

// Statistics counts the displayed tasks against the whole unfiltered list
func (r *reportingServiceImpl) Statistics(all, shown []domain.Task) Statistics {
	stats := Statistics{
		Shown: len(shown),
		Total: len(all),
	}
	for _, task := range all {
		if task.Completed {
			stats.Completed++
		}
	}
	stats.Pending = stats.Total - stats.Completed
	stats.Percent = r.Percent(stats.Completed, stats.Total)
	return stats
}

// CountByPriority tallies tasks per priority; unknown priorities are kept under their own name
func (r *reportingServiceImpl) CountByPriority(tasks []domain.Task) map[domain.Priority]int {
	counts := make(map[domain.Priority]int, len(domain.Priorities()))
	for _, p := range domain.Priorities() {
		counts[p] = 0
	}
	for _, task := range tasks {
		counts[task.Priority]++
	}
	return counts
}

// Percent returns round(100*completed/total), or 0 for an empty list
func (r *reportingServiceImpl) Percent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}
