package coder

import "context"

// ServicesQuery lists an organization's services: GET /api/orgs/{id}/services.
type ServicesQuery struct {
	query
}

// Get selects one service by ID.
func (q ServicesQuery) Get(id string) ServiceQuery {
	return ServiceQuery{q.step(id)}
}

// Execute fetches the services.
func (q ServicesQuery) Execute(ctx context.Context) (*Response[[]Service], error) {
	return execute[[]Service](ctx, q.query)
}

// ServiceQuery fetches one service: GET /api/orgs/{id}/services/{id}.
type ServiceQuery struct {
	query
}

// Execute fetches the service.
func (q ServiceQuery) Execute(ctx context.Context) (*Response[Service], error) {
	return execute[Service](ctx, q.query)
}
