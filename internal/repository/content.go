package repository

import (
	"context"

	"portfolio/internal/model"
)

// ContentRepository reads the site content. Implementations return each
// collection in its authored order; no filtering or sorting happens here.
type ContentRepository interface {
	// Profile returns the static site copy (hero, about, footer).
	Profile(ctx context.Context) (*model.Profile, error)

	ListProjects(ctx context.Context) ([]model.Project, error)
	ListAnimations(ctx context.Context) ([]model.Animation, error)
	ListEdits(ctx context.Context) ([]model.Edit, error)
	ListBlogPosts(ctx context.Context) ([]model.BlogPost, error)
}

// CatalogWriter replaces the stored catalog as a whole.
type CatalogWriter interface {
	SaveCatalog(ctx context.Context, c *model.Catalog) error
}

// ReadCatalog collects every collection of repo into one Catalog.
func ReadCatalog(ctx context.Context, repo ContentRepository) (*model.Catalog, error) {
	profile, err := repo.Profile(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := repo.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	animations, err := repo.ListAnimations(ctx)
	if err != nil {
		return nil, err
	}
	edits, err := repo.ListEdits(ctx)
	if err != nil {
		return nil, err
	}
	posts, err := repo.ListBlogPosts(ctx)
	if err != nil {
		return nil, err
	}
	return &model.Catalog{
		Profile:    *profile,
		Projects:   projects,
		Animations: animations,
		Edits:      edits,
		Blog:       posts,
	}, nil
}
