package coder

import (
	"context"

	"github.com/fivetwenty-io/coder-go/internal/constants"
)

// ImagesQuery routes to images by ID: /api/images.
type ImagesQuery struct {
	query
}

// WithEnvs sets whether image responses embed the environments using them.
// The flag is carried onto the nodes reached from this one.
func (q ImagesQuery) WithEnvs(envs bool) ImagesQuery {
	return ImagesQuery{q.withBool(constants.QueryEnvs, envs)}
}

// Get selects one image by ID.
func (q ImagesQuery) Get(id string) ImageQuery {
	return ImageQuery{q.step(id)}
}

// ImageQuery fetches one image: GET /api/images/{id}.
type ImageQuery struct {
	query
}

// WithEnvs sets whether the response embeds the environments using the image.
func (q ImageQuery) WithEnvs(envs bool) ImageQuery {
	return ImageQuery{q.withBool(constants.QueryEnvs, envs)}
}

// Tags lists the image's tags.
func (q ImageQuery) Tags() ImageTagsQuery {
	return ImageTagsQuery{q.step(constants.SegmentTags)}
}

// Execute fetches the image.
func (q ImageQuery) Execute(ctx context.Context) (*Response[Image], error) {
	return execute[Image](ctx, q.query)
}

// OrgImagesQuery lists an organization's images: GET /api/orgs/{id}/images.
type OrgImagesQuery struct {
	query
}

// WithEnvs sets whether each image embeds the environments using it.
func (q OrgImagesQuery) WithEnvs(envs bool) OrgImagesQuery {
	return OrgImagesQuery{q.withBool(constants.QueryEnvs, envs)}
}

// Execute fetches the images.
func (q OrgImagesQuery) Execute(ctx context.Context) (*Response[[]Image], error) {
	return execute[[]Image](ctx, q.query)
}
