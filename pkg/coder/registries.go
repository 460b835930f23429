package coder

import "context"

// RegistriesQuery lists registries: GET /api/registries.
type RegistriesQuery struct {
	query
}

// Get selects one registry by ID.
func (q RegistriesQuery) Get(id string) RegistryQuery {
	return RegistryQuery{q.step(id)}
}

// Execute fetches the registries.
func (q RegistriesQuery) Execute(ctx context.Context) (*Response[[]Registry], error) {
	return execute[[]Registry](ctx, q.query)
}

// RegistryQuery fetches one registry: GET /api/registries/{id}.
type RegistryQuery struct {
	query
}

// Execute fetches the registry.
func (q RegistryQuery) Execute(ctx context.Context) (*Response[Registry], error) {
	return execute[Registry](ctx, q.query)
}

// OrgRegistriesQuery lists an organization's registries:
// GET /api/orgs/{id}/registries.
type OrgRegistriesQuery struct {
	query
}

// Execute fetches the registries.
func (q OrgRegistriesQuery) Execute(ctx context.Context) (*Response[[]Registry], error) {
	return execute[[]Registry](ctx, q.query)
}
