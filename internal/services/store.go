package services

import (
	"context"

	"task-manager/internal/domain"
	"task-manager/internal/repository/sqlite"
)

// accountStore loads and saves the whole account map in one piece
type accountStore struct {
	repo   sqlite.Repository
	mapper *domain.Mapper
}

func newAccountStore(repo sqlite.Repository) *accountStore {
	return &accountStore{
		repo:   repo,
		mapper: domain.NewMapper(),
	}
}

func (s *accountStore) load(ctx context.Context) (domain.Accounts, error) {
	users, err := s.repo.LoadUsers(ctx)
	if err != nil {
		return nil, err
	}
	return s.mapper.Account.FromUsers(users), nil
}

func (s *accountStore) save(ctx context.Context, accounts domain.Accounts) error {
	return s.repo.SaveUsers(ctx, s.mapper.Account.ToUsers(accounts))
}
