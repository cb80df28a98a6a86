package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/adrg/frontmatter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"portfolio/internal/logging"
	"portfolio/internal/model"
	"portfolio/internal/repository"
)

// ContentFile is a repository.ContentRepository backed by a YAML catalog and
// an optional directory of markdown blog posts. Everything is read once by Open.
type ContentFile struct {
	catalog model.Catalog
}

var _ repository.ContentRepository = (*ContentFile)(nil)

// postMeta is the front matter accepted on a markdown blog post.
type postMeta struct {
	ID       string   `yaml:"id"`
	Title    string   `yaml:"title"`
	Excerpt  string   `yaml:"excerpt"`
	Date     string   `yaml:"date"`
	ReadTime string   `yaml:"readTime"`
	ImageURL string   `yaml:"imageUrl"`
	Featured bool     `yaml:"featured"`
	Tags     []string `yaml:"tags"`
	Author   string   `yaml:"author"`
}

// Open reads the catalog at path. When blogDir is set, every *.md file in it
// is appended to the blog collection in file-name order.
func Open(path, blogDir string) (*ContentFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	c, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if blogDir != "" {
		posts, err := readBlogDir(blogDir)
		if err != nil {
			return nil, err
		}
		c.Blog = append(c.Blog, posts...)
	}

	logging.Info("content", "catalog_file_read", map[string]any{
		"path":       path,
		"blog_dir":   blogDir,
		"projects":   len(c.Projects),
		"animations": len(c.Animations),
		"edits":      len(c.Edits),
		"blog":       len(c.Blog),
	})
	return &ContentFile{catalog: *c}, nil
}

// Decode parses a YAML catalog document.
func Decode(raw []byte) (*model.Catalog, error) {
	var c model.Catalog
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return &c, nil
}

func readBlogDir(dir string) ([]model.BlogPost, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read blog dir: %w", err)
	}
	// os.ReadDir returns entries sorted by file name.
	posts := make([]model.BlogPost, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".md") {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read blog post %s: %w", e.Name(), err)
		}
		post, err := ParsePost(e.Name(), raw)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// ParsePost converts one markdown file into a BlogPost. The body is split
// into paragraphs on blank lines. A missing id or title is derived from name.
func ParsePost(name string, raw []byte) (model.BlogPost, error) {
	var meta postMeta
	body, err := frontmatter.Parse(bytes.NewReader(raw), &meta)
	if err != nil {
		if !errors.Is(err, frontmatter.ErrNotFound) {
			return model.BlogPost{}, fmt.Errorf("parse front matter %s: %w", name, err)
		}
		body = raw
	}

	base := strings.TrimSuffix(name, filepath.Ext(name))
	if meta.ID == "" {
		meta.ID = base
	}
	if meta.Title == "" {
		words := strings.ReplaceAll(strings.ReplaceAll(base, "-", " "), "_", " ")
		meta.Title = cases.Title(language.English).String(words)
	}

	return model.BlogPost{
		ID:       meta.ID,
		Title:    meta.Title,
		Excerpt:  meta.Excerpt,
		Date:     meta.Date,
		ReadTime: meta.ReadTime,
		ImageURL: meta.ImageURL,
		Featured: meta.Featured,
		Tags:     meta.Tags,
		Author:   meta.Author,
		Content:  Paragraphs(string(body)),
	}, nil
}

// Paragraphs splits text on blank lines, joining the lines of each paragraph
// with a single space.
func Paragraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var (
		out     []string
		current []string
	)
	flush := func() {
		if len(current) > 0 {
			out = append(out, strings.Join(current, " "))
			current = current[:0]
		}
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return out
}

func (r *ContentFile) Profile(ctx context.Context) (*model.Profile, error) {
	p := r.catalog.Profile
	p.Journey = slices.Clone(p.Journey)
	return &p, nil
}

func (r *ContentFile) ListProjects(ctx context.Context) ([]model.Project, error) {
	return slices.Clone(r.catalog.Projects), nil
}

func (r *ContentFile) ListAnimations(ctx context.Context) ([]model.Animation, error) {
	return slices.Clone(r.catalog.Animations), nil
}

func (r *ContentFile) ListEdits(ctx context.Context) ([]model.Edit, error) {
	return slices.Clone(r.catalog.Edits), nil
}

func (r *ContentFile) ListBlogPosts(ctx context.Context) ([]model.BlogPost, error) {
	return slices.Clone(r.catalog.Blog), nil
}
