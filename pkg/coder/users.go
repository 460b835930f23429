package coder

import (
	"context"

	"github.com/fivetwenty-io/coder-go/internal/constants"
)

// UsersQuery lists users: GET /api/users.
type UsersQuery struct {
	query
}

// Get selects one user by ID.
func (q UsersQuery) Get(id string) UserQuery {
	return UserQuery{q.step(id)}
}

// Me selects the user the session token belongs to.
func (q UsersQuery) Me() UserQuery {
	return UserQuery{q.step(constants.SegmentMe)}
}

// Execute fetches the users.
func (q UsersQuery) Execute(ctx context.Context) (*Response[[]User], error) {
	return execute[[]User](ctx, q.query)
}

// UserQuery fetches one user: GET /api/users/{id} or /api/users/me.
type UserQuery struct {
	query
}

// Execute fetches the user.
func (q UserQuery) Execute(ctx context.Context) (*Response[User], error) {
	return execute[User](ctx, q.query)
}
