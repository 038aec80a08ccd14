package api

import (
	"context"
	"time"

	"task-manager/internal/domain"
	"task-manager/internal/repository/sqlite"
)

// StorageItem describes one stored key without exposing its value
type StorageItem struct {
	Key       string    `json:"key"`
	Size      int       `json:"size"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AccountSummary describes one account without its password
type AccountSummary struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	Tasks     int    `json:"tasks"`
	Completed int    `json:"completed"`
}

// API exposes the raw local storage for inspection
type API interface {
	StorageItems(ctx context.Context) ([]StorageItem, error)
	Accounts(ctx context.Context) ([]AccountSummary, error)
	LoggedIn(ctx context.Context) (string, error)
}

type apiImpl struct {
	repo   sqlite.Repository
	mapper *domain.Mapper
}

// New creates a new API instance.
func New(repo sqlite.Repository) API {
	return &apiImpl{
		repo:   repo,
		mapper: domain.NewMapper(),
	}
}

func (a *apiImpl) StorageItems(ctx context.Context) ([]StorageItem, error) {
	items, err := a.repo.ListItems(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]StorageItem, 0, len(items))
	for _, item := range items {
		out = append(out, StorageItem{
			Key:       item.Key,
			Size:      len(item.Value),
			UpdatedAt: item.UpdatedAt,
		})
	}
	return out, nil
}

// Accounts lists accounts sorted by email
func (a *apiImpl) Accounts(ctx context.Context) ([]AccountSummary, error) {
	users, err := a.repo.LoadUsers(ctx)
	if err != nil {
		return nil, err
	}

	accounts := a.mapper.Account.FromUsers(users)
	out := make([]AccountSummary, 0, len(accounts))
	for _, email := range accounts.Emails() {
		account := accounts[email]
		summary := AccountSummary{
			Email: account.Email,
			Name:  account.Name,
			Tasks: len(account.Tasks),
		}
		for _, task := range account.Tasks {
			if task.Completed {
				summary.Completed++
			}
		}
		out = append(out, summary)
	}
	return out, nil
}

// LoggedIn returns the raw session marker, "" when logged out
func (a *apiImpl) LoggedIn(ctx context.Context) (string, error) {
	return a.repo.GetSession(ctx)
}
