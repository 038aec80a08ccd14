package domain

import (
	"strings"

	"task-manager/internal/errors"
)

// SortKey selects the order of the displayed sequence.
type SortKey string

const (
	SortCreatedDesc  SortKey = "created-desc"
	SortCreatedAsc   SortKey = "created-asc"
	SortDueAsc       SortKey = "due-asc"
	SortDueDesc      SortKey = "due-desc"
	SortPriorityDesc SortKey = "priority-desc"
)

// SortKeys lists every sort key in selector order.
func SortKeys() []SortKey {
	return []SortKey{SortCreatedDesc, SortCreatedAsc, SortDueAsc, SortDueDesc, SortPriorityDesc}
}

// StatusFilter keeps all, pending or completed tasks.
type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusPending   StatusFilter = "pending"
	StatusCompleted StatusFilter = "completed"
)

// StatusFilters lists every status filter in selector order.
func StatusFilters() []StatusFilter {
	return []StatusFilter{StatusAll, StatusPending, StatusCompleted}
}

// PriorityFilter keeps all tasks or only those of one priority.
type PriorityFilter string

// PriorityAll disables priority filtering.
const PriorityAll PriorityFilter = "all"

// PriorityFilters lists every priority filter in selector order.
func PriorityFilters() []PriorityFilter {
	return []PriorityFilter{PriorityAll, PriorityFilter(PriorityLow), PriorityFilter(PriorityMedium), PriorityFilter(PriorityHigh)}
}

// ViewOptions represents the search, filter and sort inputs of the task screen.
type ViewOptions struct {
	Search   string
	Priority PriorityFilter
	Status   StatusFilter
	Sort     SortKey
}

// DefaultViewOptions shows everything, newest first.
func DefaultViewOptions() ViewOptions {
	return ViewOptions{
		Priority: PriorityAll,
		Status:   StatusAll,
		Sort:     SortCreatedDesc,
	}
}

// ParseSortKey accepts a sort selector value; empty means created-desc.
func ParseSortKey(s string) (SortKey, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return SortCreatedDesc, nil
	}
	for _, key := range SortKeys() {
		if string(key) == s {
			return key, nil
		}
	}
	return "", errors.NewInvalidInputError("sort", s, "expected one of created-desc, created-asc, due-asc, due-desc, priority-desc")
}

// ParseStatusFilter accepts a status selector value; empty means all.
func ParseStatusFilter(s string) (StatusFilter, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return StatusAll, nil
	}
	for _, status := range StatusFilters() {
		if string(status) == s {
			return status, nil
		}
	}
	return "", errors.NewInvalidInputError("status", s, "expected one of all, pending, completed")
}

// ParsePriorityFilter accepts a priority selector value; empty means all.
func ParsePriorityFilter(s string) (PriorityFilter, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return PriorityAll, nil
	}
	for _, p := range PriorityFilters() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", errors.NewInvalidInputError("priority", s, "expected one of all, low, medium, high")
}

// Next returns the following value in selector order, wrapping around.
func (k SortKey) Next() SortKey {
	return nextOf(SortKeys(), k)
}

// Next returns the following value in selector order, wrapping around.
func (s StatusFilter) Next() StatusFilter {
	return nextOf(StatusFilters(), s)
}

// Next returns the following value in selector order, wrapping around.
func (p PriorityFilter) Next() PriorityFilter {
	return nextOf(PriorityFilters(), p)
}

func nextOf[T comparable](values []T, current T) T {
	for i, v := range values {
		if v == current {
			return values[(i+1)%len(values)]
		}
	}
	return values[0]
}
