package services

import (
	"sort"
	"strings"

	"task-manager/internal/domain"
)

// searchServiceImpl implements the SearchService interface. It holds no
// state; every call derives a fresh slice.
type searchServiceImpl struct{}

// NewSearchService creates a new SearchService instance
func NewSearchService() SearchService {
	return &searchServiceImpl{}
}

// ParseViewOptions validates raw selector values. Empty values take the defaults.
func (s *searchServiceImpl) ParseViewOptions(search, priority, status, sortKey string) (domain.ViewOptions, error) {
	opts := domain.DefaultViewOptions()
	opts.Search = search

	var err error
	if opts.Priority, err = domain.ParsePriorityFilter(priority); err != nil {
		return domain.ViewOptions{}, err
	}
	if opts.Status, err = domain.ParseStatusFilter(status); err != nil {
		return domain.ViewOptions{}, err
	}
	if opts.Sort, err = domain.ParseSortKey(sortKey); err != nil {
		return domain.ViewOptions{}, err
	}
	return opts, nil
}

// ApplyView filters by search text, priority and status, then sorts stably.
// The input slice is never modified.
func (s *searchServiceImpl) ApplyView(tasks []domain.Task, opts domain.ViewOptions) []domain.Task {
	query := strings.ToLower(strings.TrimSpace(opts.Search))

	shown := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if !task.Matches(query) {
			continue
		}
		if !matchesPriority(task, opts.Priority) {
			continue
		}
		if !matchesStatus(task, opts.Status) {
			continue
		}
		shown = append(shown, task)
	}

	sort.SliceStable(shown, lessFor(shown, opts.Sort))
	return shown
}

func matchesPriority(task domain.Task, filter domain.PriorityFilter) bool {
	if filter == "" || filter == domain.PriorityAll {
		return true
	}
	return task.Priority == domain.Priority(filter)
}

func matchesStatus(task domain.Task, filter domain.StatusFilter) bool {
	switch filter {
	case domain.StatusPending:
		return !task.Completed
	case domain.StatusCompleted:
		return task.Completed
	default:
		return true
	}
}

func lessFor(tasks []domain.Task, key domain.SortKey) func(i, j int) bool {
	switch key {
	case domain.SortCreatedAsc:
		return func(i, j int) bool {
			return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
		}
	case domain.SortDueAsc:
		return func(i, j int) bool {
			return dueLess(tasks[i], tasks[j], false)
		}
	case domain.SortDueDesc:
		return func(i, j int) bool {
			return dueLess(tasks[i], tasks[j], true)
		}
	case domain.SortPriorityDesc:
		return func(i, j int) bool {
			return tasks[i].Priority.Rank() > tasks[j].Priority.Rank()
		}
	default:
		return func(i, j int) bool {
			return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
		}
	}
}

// dueLess orders by due date; tasks without one go last either way.
func dueLess(a, b domain.Task, descending bool) bool {
	da, okA := a.Due()
	db, okB := b.Due()
	if okA != okB {
		return okA
	}
	if !okA {
		return false
	}
	if descending {
		return da.After(db)
	}
	return da.Before(db)
}
