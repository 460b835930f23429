package coder

import (
	"context"

	"github.com/fivetwenty-io/coder-go/internal/constants"
)

// OrgsQuery lists organizations: GET /api/orgs.
type OrgsQuery struct {
	query
}

// Get selects one organization by ID.
func (q OrgsQuery) Get(id string) OrgQuery {
	return OrgQuery{q.step(id)}
}

// Namespaces lists the resource namespaces in use by organizations.
func (q OrgsQuery) Namespaces() OrgNamespacesQuery {
	return OrgNamespacesQuery{q.step(constants.SegmentNamespaces)}
}

// Execute fetches the organizations.
func (q OrgsQuery) Execute(ctx context.Context) (*Response[[]Organization], error) {
	return execute[[]Organization](ctx, q.query)
}

// OrgQuery fetches one organization: GET /api/orgs/{id}.
type OrgQuery struct {
	query
}

// Members lists the organization's members.
func (q OrgQuery) Members() MembersQuery {
	return MembersQuery{q.step(constants.SegmentMembers)}
}

// Member selects one member of the organization by user ID.
func (q OrgQuery) Member(id string) MemberQuery {
	return MemberQuery{q.step(constants.SegmentMembers, id)}
}

// Envs lists the organization's environments.
func (q OrgQuery) Envs() EnvsQuery {
	return EnvsQuery{q.step(constants.SegmentEnvironments)}
}

// Images lists the organization's images.
func (q OrgQuery) Images() OrgImagesQuery {
	return OrgImagesQuery{q.step(constants.SegmentImages)}
}

// Registries lists the organization's registries.
func (q OrgQuery) Registries() OrgRegistriesQuery {
	return OrgRegistriesQuery{q.step(constants.SegmentRegistries)}
}

// Services lists the organization's services.
func (q OrgQuery) Services() ServicesQuery {
	return ServicesQuery{q.step(constants.SegmentServices)}
}

// Service selects one of the organization's services by ID.
func (q OrgQuery) Service(id string) ServiceQuery {
	return ServiceQuery{q.step(constants.SegmentServices, id)}
}

// Execute fetches the organization.
func (q OrgQuery) Execute(ctx context.Context) (*Response[Organization], error) {
	return execute[Organization](ctx, q.query)
}

// OrgNamespacesQuery lists resource namespaces: GET /api/orgs/namespaces.
type OrgNamespacesQuery struct {
	query
}

// Execute fetches the namespaces.
func (q OrgNamespacesQuery) Execute(ctx context.Context) (*Response[[]string], error) {
	return execute[[]string](ctx, q.query)
}

// MembersQuery lists organization members: GET /api/orgs/{id}/members.
type MembersQuery struct {
	query
}

// Get selects one member by user ID.
func (q MembersQuery) Get(id string) MemberQuery {
	return MemberQuery{q.step(id)}
}

// Execute fetches the members.
func (q MembersQuery) Execute(ctx context.Context) (*Response[[]OrgMember], error) {
	return execute[[]OrgMember](ctx, q.query)
}

// MemberQuery fetches one member: GET /api/orgs/{id}/members/{user}.
type MemberQuery struct {
	query
}

// Envs lists the member's environments within the organization.
func (q MemberQuery) Envs() EnvsQuery {
	return EnvsQuery{q.step(constants.SegmentEnvironments)}
}

// Execute fetches the member.
func (q MemberQuery) Execute(ctx context.Context) (*Response[OrgMember], error) {
	return execute[OrgMember](ctx, q.query)
}
