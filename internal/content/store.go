package content

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"portfolio/internal/logging"
	"portfolio/internal/model"
	tracing "portfolio/internal/otel"
	"portfolio/internal/repository"
)

var (
	ErrDuplicateID     = errors.New("duplicate item id")
	ErrEmptyID         = errors.New("item id is empty")
	ErrInvalidCategory = errors.New("invalid project category")
)

// Store is the immutable, in-memory content set. It is safe for concurrent
// readers because nothing writes to it after Load returns.
type Store struct {
	profile    model.Profile
	projects   []model.Project
	animations []model.Animation
	edits      []model.Edit
	posts      []model.BlogPost
}

// Load reads every collection from repo, validates it and renders blog
// paragraphs to HTML.
func Load(ctx context.Context, repo repository.ContentRepository) (*Store, error) {
	ctx, span := tracing.Tracer().Start(ctx, "content.Load")
	defer span.End()

	catalog, err := repository.ReadCatalog(ctx, repo)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return New(catalog)
}

// New builds a Store from an already loaded catalog.
func New(c *model.Catalog) (*Store, error) {
	if err := validate(c); err != nil {
		return nil, err
	}

	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	posts := cloneAll(c.Blog)
	for i := range posts {
		rendered := make([]string, 0, len(posts[i].Content))
		for _, para := range posts[i].Content {
			var buf bytes.Buffer
			if err := md.Convert([]byte(para), &buf); err != nil {
				return nil, fmt.Errorf("render blog post %s: %w", posts[i].ID, err)
			}
			rendered = append(rendered, buf.String())
		}
		posts[i].ContentHTML = rendered
	}

	s := &Store{
		profile:    c.Profile.Clone(),
		projects:   cloneAll(c.Projects),
		animations: cloneAll(c.Animations),
		edits:      cloneAll(c.Edits),
		posts:      posts,
	}
	logging.Info("content", "content_loaded", map[string]any{
		"projects":   len(s.projects),
		"animations": len(s.animations),
		"edits":      len(s.edits),
		"blog":       len(s.posts),
	})
	return s, nil
}

func validate(c *model.Catalog) error {
	if err := checkIDs(model.CategoryProjects, c.Projects); err != nil {
		return err
	}
	if err := checkIDs(model.CategoryAnimations, c.Animations); err != nil {
		return err
	}
	if err := checkIDs(model.CategoryEdits, c.Edits); err != nil {
		return err
	}
	if err := checkIDs(model.CategoryBlog, c.Blog); err != nil {
		return err
	}
	for _, p := range c.Projects {
		if !p.Category.Valid() {
			return fmt.Errorf("%w: project %s has %q", ErrInvalidCategory, p.ID, p.Category)
		}
	}
	return nil
}

func checkIDs[T model.Listable](cat model.Category, items []T) error {
	seen := make(map[string]struct{}, len(items))
	for i, it := range items {
		id := it.ItemID()
		if id == "" {
			return fmt.Errorf("%w: %s[%d]", ErrEmptyID, cat, i)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: %s/%s", ErrDuplicateID, cat, id)
		}
		seen[id] = struct{}{}
		if _, ok := ParseDate(it.ItemDate()); !ok {
			logging.Warn("content", "unparseable_date", map[string]any{
				"category": string(cat),
				"id":       id,
				"date":     it.ItemDate(),
				"msg":      "item sorts as oldest",
			})
		}
	}
	return nil
}

// Every item handed out is a deep copy; callers cannot reach the store's
// slices.

func (s *Store) Profile() model.Profile { return s.profile.Clone() }

func (s *Store) Projects() []model.Project     { return cloneAll(s.projects) }
func (s *Store) Animations() []model.Animation { return cloneAll(s.animations) }
func (s *Store) Edits() []model.Edit           { return cloneAll(s.edits) }
func (s *Store) BlogPosts() []model.BlogPost   { return cloneAll(s.posts) }

func (s *Store) VisibleProjects(mode model.FilterMode, search string) []model.Project {
	return cloneAll(VisibleItems(s.projects, mode, search))
}

func (s *Store) VisibleAnimations(mode model.FilterMode, search string) []model.Animation {
	return cloneAll(VisibleItems(s.animations, mode, search))
}

func (s *Store) VisibleEdits(mode model.FilterMode, search string) []model.Edit {
	return cloneAll(VisibleItems(s.edits, mode, search))
}

func (s *Store) VisibleBlogPosts(mode model.FilterMode, search string) []model.BlogPost {
	return cloneAll(VisibleItems(s.posts, mode, search))
}

// Visible dispatches to the per-kind function for c and returns the result
// as Listable values.
func (s *Store) Visible(c model.Category, mode model.FilterMode, search string) ([]model.Listable, error) {
	switch c {
	case model.CategoryProjects:
		return toListable(s.VisibleProjects(mode, search)), nil
	case model.CategoryAnimations:
		return toListable(s.VisibleAnimations(mode, search)), nil
	case model.CategoryEdits:
		return toListable(s.VisibleEdits(mode, search)), nil
	case model.CategoryBlog:
		return toListable(s.VisibleBlogPosts(mode, search)), nil
	}
	return nil, fmt.Errorf("%w: %q", model.ErrUnknownCategory, c)
}

// Lookup finds an item by category and id.
func (s *Store) Lookup(c model.Category, id string) (model.Listable, bool) {
	switch c {
	case model.CategoryProjects:
		return find(s.projects, id)
	case model.CategoryAnimations:
		return find(s.animations, id)
	case model.CategoryEdits:
		return find(s.edits, id)
	case model.CategoryBlog:
		return find(s.posts, id)
	}
	return nil, false
}

// Has reports whether category c holds an item with id.
func (s *Store) Has(c model.Category, id string) bool {
	switch c {
	case model.CategoryProjects:
		return index(s.projects, id) >= 0
	case model.CategoryAnimations:
		return index(s.animations, id) >= 0
	case model.CategoryEdits:
		return index(s.edits, id) >= 0
	case model.CategoryBlog:
		return index(s.posts, id) >= 0
	}
	return false
}

type cloner[T any] interface {
	model.Listable
	Clone() T
}

func cloneAll[T cloner[T]](items []T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}

func index[T model.Listable](items []T, id string) int {
	return slices.IndexFunc(items, func(it T) bool { return it.ItemID() == id })
}

func find[T cloner[T]](items []T, id string) (model.Listable, bool) {
	if i := index(items, id); i >= 0 {
		return items[i].Clone(), true
	}
	return nil, false
}

func toListable[T model.Listable](items []T) []model.Listable {
	out := make([]model.Listable, len(items))
	for i, it := range items {
		out[i] = it
	}
	return out
}
