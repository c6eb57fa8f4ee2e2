package service

import (
	"context"

	"github.com/kindling-app/kindling/internal/api/domain"
	"github.com/kindling-app/kindling/internal/api/store"
)

type MemberService struct {
	Store store.Store
}

// List returns every registered user. No pagination; the member list
// is small at this stage.
func (s *MemberService) List(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListUsers(ctx)
}

// GetByID fetches a single user, returning store.ErrNotFound when absent.
func (s *MemberService) GetByID(ctx context.Context, id string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, id)
}
