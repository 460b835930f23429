package coder

import "github.com/fivetwenty-io/coder-go/internal/constants"

// GetQuery is the API root. It offers shortcuts to every top-level resource.
type GetQuery struct {
	query
}

// Users lists every user.
func (q GetQuery) Users() UsersQuery {
	return UsersQuery{q.step(constants.SegmentUsers)}
}

// User selects one user by ID.
func (q GetQuery) User(id string) UserQuery {
	return UserQuery{q.step(constants.SegmentUsers, id)}
}

// Me selects the authenticated user.
func (q GetQuery) Me() UserQuery {
	return UserQuery{q.step(constants.SegmentUsers, constants.SegmentMe)}
}

// Orgs lists every organization.
func (q GetQuery) Orgs() OrgsQuery {
	return OrgsQuery{q.step(constants.SegmentOrgs)}
}

// Org selects one organization by ID.
func (q GetQuery) Org(id string) OrgQuery {
	return OrgQuery{q.step(constants.SegmentOrgs, id)}
}

// Env selects one environment by ID.
func (q GetQuery) Env(id string) EnvQuery {
	return EnvQuery{q.step(constants.SegmentEnvironments, id)}
}

// Image selects one image by ID.
func (q GetQuery) Image(id string) ImageQuery {
	return ImageQuery{q.step(constants.SegmentImages, id)}
}

// Registry selects one registry by ID.
func (q GetQuery) Registry(id string) RegistryQuery {
	return RegistryQuery{q.step(constants.SegmentRegistries, id)}
}
