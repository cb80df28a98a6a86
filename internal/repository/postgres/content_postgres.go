package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"portfolio/internal/model"
	"portfolio/internal/repository"
)

// ErrNoProfile is returned when the profile row has not been seeded.
var ErrNoProfile = errors.New("profile not found")

// ContentPostgres is a PostgreSQL implementation of repository.ContentRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type ContentPostgres struct {
	db *sql.DB
}

// NewContentPostgres creates a new ContentPostgres repository.
func NewContentPostgres(db *sql.DB) *ContentPostgres {
	return &ContentPostgres{db: db}
}

var (
	_ repository.ContentRepository = (*ContentPostgres)(nil)
	_ repository.CatalogWriter     = (*ContentPostgres)(nil)
)

// Profile loads the single profile document.
func (r *ContentPostgres) Profile(ctx context.Context) (*model.Profile, error) {
	const q = `SELECT data FROM profile WHERE id = 1`
	var raw []byte
	if err := r.db.QueryRowContext(ctx, q).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoProfile
		}
		return nil, err
	}
	var p model.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &p, nil
}

// ListProjects returns every project in authored order.
func (r *ContentPostgres) ListProjects(ctx context.Context) ([]model.Project, error) {
	const q = `
		SELECT id, title, description, tags, image_url, category, featured, date, link,
		       full_description, full_description_image, journey, journey_image,
		       challenges, challenges_image, tech_stack, github_link, demo_link
		FROM projects
		ORDER BY position, id
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Project, 0)
	for rows.Next() {
		var (
			p         model.Project
			tags      stringList
			techStack stringList
		)
		if err := rows.Scan(
			&p.ID,
			&p.Title,
			&p.Description,
			&tags,
			&p.ImageURL,
			&p.Category,
			&p.Featured,
			&p.Date,
			&p.Link,
			&p.FullDescription,
			&p.FullDescriptionImage,
			&p.Journey,
			&p.JourneyImage,
			&p.Challenges,
			&p.ChallengesImage,
			&techStack,
			&p.GithubLink,
			&p.DemoLink,
		); err != nil {
			return nil, err
		}
		p.Tags = tags
		p.TechStackDetails = techStack
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// ListAnimations returns every animation in authored order.
func (r *ContentPostgres) ListAnimations(ctx context.Context) ([]model.Animation, error) {
	media, err := r.listMedia(ctx, model.CategoryAnimations)
	if err != nil {
		return nil, err
	}
	out := make([]model.Animation, len(media))
	for i, m := range media {
		out[i] = model.Animation{Media: m}
	}
	return out, nil
}

// ListEdits returns every edit in authored order.
func (r *ContentPostgres) ListEdits(ctx context.Context) ([]model.Edit, error) {
	media, err := r.listMedia(ctx, model.CategoryEdits)
	if err != nil {
		return nil, err
	}
	out := make([]model.Edit, len(media))
	for i, m := range media {
		out[i] = model.Edit{Media: m}
	}
	return out, nil
}

func (r *ContentPostgres) listMedia(ctx context.Context, kind model.Category) ([]model.Media, error) {
	const q = `
		SELECT id, title, description, video_url, image_url, featured, date, software
		FROM media
		WHERE kind = $1
		ORDER BY position, id
	`
	rows, err := r.db.QueryContext(ctx, q, string(kind))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Media, 0)
	for rows.Next() {
		var (
			m        model.Media
			software stringList
		)
		if err := rows.Scan(
			&m.ID,
			&m.Title,
			&m.Description,
			&m.VideoURL,
			&m.ImageURL,
			&m.Featured,
			&m.Date,
			&software,
		); err != nil {
			return nil, err
		}
		m.Software = software
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// ListBlogPosts returns every post in authored order.
func (r *ContentPostgres) ListBlogPosts(ctx context.Context) ([]model.BlogPost, error) {
	const q = `
		SELECT id, title, excerpt, date, read_time, image_url, featured, tags, author, content
		FROM blog_posts
		ORDER BY position, id
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.BlogPost, 0)
	for rows.Next() {
		var (
			b       model.BlogPost
			tags    stringList
			content stringList
		)
		if err := rows.Scan(
			&b.ID,
			&b.Title,
			&b.Excerpt,
			&b.Date,
			&b.ReadTime,
			&b.ImageURL,
			&b.Featured,
			&tags,
			&b.Author,
			&content,
		); err != nil {
			return nil, err
		}
		b.Tags = tags
		b.Content = content
		items = append(items, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// SaveCatalog replaces all stored content with c inside one transaction.
func (r *ContentPostgres) SaveCatalog(ctx context.Context, c *model.Catalog) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, table := range []string{"projects", "media", "blog_posts", "profile"} {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	profile, err := json.Marshal(c.Profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `INSERT INTO profile (id, data) VALUES (1, $1)`, profile); err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}

	const qProject = `
		INSERT INTO projects (id, position, title, description, tags, image_url, category, featured, date, link,
		                      full_description, full_description_image, journey, journey_image,
		                      challenges, challenges_image, tech_stack, github_link, demo_link)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`
	for i, p := range c.Projects {
		if _, err = tx.ExecContext(ctx, qProject,
			p.ID, i, p.Title, p.Description, stringList(p.Tags), p.ImageURL, string(p.Category), p.Featured, p.Date, p.Link,
			p.FullDescription, p.FullDescriptionImage, p.Journey, p.JourneyImage,
			p.Challenges, p.ChallengesImage, stringList(p.TechStackDetails), p.GithubLink, p.DemoLink,
		); err != nil {
			return fmt.Errorf("insert project %s: %w", p.ID, err)
		}
	}

	for i, a := range c.Animations {
		if err = insertMedia(ctx, tx, model.CategoryAnimations, i, a.Media); err != nil {
			return err
		}
	}
	for i, e := range c.Edits {
		if err = insertMedia(ctx, tx, model.CategoryEdits, i, e.Media); err != nil {
			return err
		}
	}

	const qPost = `
		INSERT INTO blog_posts (id, position, title, excerpt, date, read_time, image_url, featured, tags, author, content)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	for i, b := range c.Blog {
		if _, err = tx.ExecContext(ctx, qPost,
			b.ID, i, b.Title, b.Excerpt, b.Date, b.ReadTime, b.ImageURL, b.Featured,
			stringList(b.Tags), b.Author, stringList(b.Content),
		); err != nil {
			return fmt.Errorf("insert blog post %s: %w", b.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func insertMedia(ctx context.Context, tx *sql.Tx, kind model.Category, pos int, m model.Media) error {
	const q = `
		INSERT INTO media (kind, id, position, title, description, video_url, image_url, featured, date, software)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	if _, err := tx.ExecContext(ctx, q,
		string(kind), m.ID, pos, m.Title, m.Description, m.VideoURL, m.ImageURL, m.Featured, m.Date, stringList(m.Software),
	); err != nil {
		return fmt.Errorf("insert %s %s: %w", kind, m.ID, err)
	}
	return nil
}
