package coder

import "context"

// GlobalEnvsQuery routes to environments by ID: /api/environments. Listing
// every environment is not offered; use OrgQuery.Envs or MemberQuery.Envs.
type GlobalEnvsQuery struct {
	query
}

// Get selects one environment by ID.
func (q GlobalEnvsQuery) Get(id string) EnvQuery {
	return EnvQuery{q.step(id)}
}

// EnvQuery fetches one environment: GET /api/environments/{id}.
type EnvQuery struct {
	query
}

// Execute fetches the environment.
func (q EnvQuery) Execute(ctx context.Context) (*Response[Environment], error) {
	return execute[Environment](ctx, q.query)
}

// EnvsQuery lists environments of an organization or of one member.
type EnvsQuery struct {
	query
}

// Execute fetches the environments.
func (q EnvsQuery) Execute(ctx context.Context) (*Response[[]Environment], error) {
	return execute[[]Environment](ctx, q.query)
}
