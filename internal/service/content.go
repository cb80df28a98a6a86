package service

import (
	"context"
	"errors"
	"fmt"

	"portfolio/internal/content"
	"portfolio/internal/model"
)

var ErrNotFound = errors.New("item not found")

// MediaResolver maps a stored media reference to the URL a client fetches.
// *storage.MediaResolver implements it.
type MediaResolver interface {
	Resolve(ctx context.Context, ref string) (string, error)
}

// ListResult is the service-level DTO for one category's visible items.
type ListResult struct {
	Category model.Category   `json:"category"`
	Mode     model.FilterMode `json:"mode"`
	Search   string           `json:"search,omitempty"`
	Items    []model.Listable `json:"data"`
	Total    int              `json:"total"`
}

// ContentService defines the read use cases over the content store.
type ContentService interface {
	// List returns the visible items of category for mode and search.
	List(ctx context.Context, category model.Category, mode model.FilterMode, search string) (*ListResult, error)

	// Get returns a single item by category and id.
	Get(ctx context.Context, category model.Category, id string) (model.Listable, error)

	// Exists reports whether category holds id without resolving media.
	Exists(ctx context.Context, category model.Category, id string) (bool, error)

	// Profile returns the static site copy.
	Profile(ctx context.Context) (*model.Profile, error)
}

type contentService struct {
	store    *content.Store
	resolver MediaResolver
}

// NewContentService constructs a ContentService. resolver may be nil, in which
// case media references are returned as stored.
func NewContentService(store *content.Store, resolver MediaResolver) ContentService {
	return &contentService{store: store, resolver: resolver}
}

func (s *contentService) List(ctx context.Context, category model.Category, mode model.FilterMode, search string) (*ListResult, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownFilterMode, mode)
	}
	items, err := s.store.Visible(category, mode, search)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i], err = resolveItem(ctx, s.resolver, items[i]); err != nil {
			return nil, err
		}
	}
	return &ListResult{
		Category: category,
		Mode:     mode,
		Search:   search,
		Items:    items,
		Total:    len(items),
	}, nil
}

func (s *contentService) Get(ctx context.Context, category model.Category, id string) (model.Listable, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownCategory, category)
	}
	item, ok := s.store.Lookup(category, id)
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, category, id)
	}
	return resolveItem(ctx, s.resolver, item)
}

func (s *contentService) Exists(ctx context.Context, category model.Category, id string) (bool, error) {
	if !category.Valid() {
		return false, fmt.Errorf("%w: %q", model.ErrUnknownCategory, category)
	}
	return s.store.Has(category, id), nil
}

func (s *contentService) Profile(ctx context.Context) (*model.Profile, error) {
	p := s.store.Profile()
	return &p, nil
}

// resolveItem returns a copy of item with its media references resolved.
func resolveItem(ctx context.Context, r MediaResolver, item model.Listable) (model.Listable, error) {
	if r == nil {
		return item, nil
	}
	switch v := item.(type) {
	case model.Project:
		err := resolveRefs(ctx, r, &v.ImageURL, &v.FullDescriptionImage, &v.JourneyImage, &v.ChallengesImage)
		return v, err
	case model.Animation:
		err := resolveRefs(ctx, r, &v.ImageURL, &v.VideoURL)
		return v, err
	case model.Edit:
		err := resolveRefs(ctx, r, &v.ImageURL, &v.VideoURL)
		return v, err
	case model.BlogPost:
		err := resolveRefs(ctx, r, &v.ImageURL)
		return v, err
	}
	return item, nil
}

func resolveRefs(ctx context.Context, r MediaResolver, refs ...*string) error {
	for _, ref := range refs {
		if *ref == "" {
			continue
		}
		u, err := r.Resolve(ctx, *ref)
		if err != nil {
			return fmt.Errorf("resolve media: %w", err)
		}
		*ref = u
	}
	return nil
}
