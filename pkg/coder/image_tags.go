package coder

import "context"

// ImageTagsQuery lists an image's tags: GET /api/images/{id}/tags.
type ImageTagsQuery struct {
	query
}

// Get selects one tag by name.
func (q ImageTagsQuery) Get(tag string) ImageTagQuery {
	return ImageTagQuery{q.step(tag)}
}

// Execute fetches the tags.
func (q ImageTagsQuery) Execute(ctx context.Context) (*Response[[]ImageTag], error) {
	return execute[[]ImageTag](ctx, q.query)
}

// ImageTagQuery fetches one tag: GET /api/images/{id}/tags/{tag}.
type ImageTagQuery struct {
	query
}

// Execute fetches the tag.
func (q ImageTagQuery) Execute(ctx context.Context) (*Response[ImageTag], error) {
	return execute[ImageTag](ctx, q.query)
}
