package model

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownCategory   = errors.New("unknown category")
	ErrUnknownPage       = errors.New("unknown page")
	ErrUnknownFilterMode = errors.New("unknown filter mode")
)

// Category is one of the four content kinds. Each has its own filter mode and
// detail selection slot.
type Category string

const (
	CategoryProjects   Category = "projects"
	CategoryAnimations Category = "animations"
	CategoryEdits      Category = "edits"
	CategoryBlog       Category = "blog"
)

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{CategoryProjects, CategoryAnimations, CategoryEdits, CategoryBlog}
}

// ParseCategory validates s against the closed set of categories.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

func (c Category) Valid() bool {
	switch c {
	case CategoryProjects, CategoryAnimations, CategoryEdits, CategoryBlog:
		return true
	}
	return false
}

// Page returns the top-level page that renders this category.
func (c Category) Page() Page {
	switch c {
	case CategoryProjects:
		return PageProjects
	case CategoryAnimations:
		return PageAnimations
	case CategoryEdits:
		return PageEdits
	case CategoryBlog:
		return PageBlog
	}
	return ""
}

// Page is a top-level view of the site.
type Page string

const (
	PageHome       Page = "home"
	PageAbout      Page = "about"
	PageProjects   Page = "projects"
	PageAnimations Page = "animations"
	PageEdits      Page = "edits"
	PageBlog       Page = "blog"
	PageContact    Page = "contact"
)

// NavLink is an entry of the site navigation.
type NavLink struct {
	Label string `json:"label"`
	Page  Page   `json:"page"`
}

// Pages returns the navigation in display order.
func Pages() []NavLink {
	return []NavLink{
		{Label: "Home", Page: PageHome},
		{Label: "About Me", Page: PageAbout},
		{Label: "Projects", Page: PageProjects},
		{Label: "Animations", Page: PageAnimations},
		{Label: "Edits", Page: PageEdits},
		{Label: "Blog", Page: PageBlog},
		{Label: "Contact Me", Page: PageContact},
	}
}

// ParsePage validates s against the closed set of pages.
func ParsePage(s string) (Page, error) {
	p := Page(s)
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPage, s)
	}
	return p, nil
}

func (p Page) Valid() bool {
	switch p {
	case PageHome, PageAbout, PageProjects, PageAnimations, PageEdits, PageBlog, PageContact:
		return true
	}
	return false
}

// Category returns the content category rendered by this page, if any.
func (p Page) Category() (Category, bool) {
	switch p {
	case PageProjects:
		return CategoryProjects, true
	case PageAnimations:
		return CategoryAnimations, true
	case PageEdits:
		return CategoryEdits, true
	case PageBlog:
		return CategoryBlog, true
	}
	return "", false
}

// FilterMode selects between the curated subset and the full date-sorted list.
type FilterMode string

const (
	FilterFeatured FilterMode = "featured"
	FilterRecent   FilterMode = "recent"
)

// ParseFilterMode validates s. An empty string is not accepted; callers that
// want a default must substitute it before parsing.
func ParseFilterMode(s string) (FilterMode, error) {
	m := FilterMode(s)
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownFilterMode, s)
	}
	return m, nil
}

func (m FilterMode) Valid() bool {
	return m == FilterFeatured || m == FilterRecent
}
