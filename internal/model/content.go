package model

import "slices"

// Content models are plain data loaded once at startup and never mutated
// afterwards. They carry yaml tags for the file catalog and json tags for the API.

// Listable is the capability the selection function needs from a content item.
type Listable interface {
	ItemID() string
	ItemTitle() string
	ItemDate() string
	IsFeatured() bool
}

// ProjectCategory classifies a project.
type ProjectCategory string

const (
	ProjectTech     ProjectCategory = "tech"
	ProjectRobotics ProjectCategory = "robotics"
	ProjectIoT      ProjectCategory = "iot"
	ProjectAI       ProjectCategory = "ai"
)

func (c ProjectCategory) Valid() bool {
	switch c {
	case ProjectTech, ProjectRobotics, ProjectIoT, ProjectAI:
		return true
	}
	return false
}

// Project is a tech/robotics build with a long-form case study.
type Project struct {
	ID                   string          `json:"id" yaml:"id"`
	Title                string          `json:"title" yaml:"title"`
	Description          string          `json:"description" yaml:"description"`
	Tags                 []string        `json:"tags" yaml:"tags"`
	ImageURL             string          `json:"imageUrl" yaml:"imageUrl"`
	Category             ProjectCategory `json:"category" yaml:"category"`
	Featured             bool            `json:"featured" yaml:"featured"`
	Date                 string          `json:"date" yaml:"date"`
	Link                 string          `json:"link,omitempty" yaml:"link,omitempty"`
	FullDescription      string          `json:"fullDescription" yaml:"fullDescription"`
	FullDescriptionImage string          `json:"fullDescriptionImage,omitempty" yaml:"fullDescriptionImage,omitempty"`
	Journey              string          `json:"journey" yaml:"journey"`
	JourneyImage         string          `json:"journeyImage,omitempty" yaml:"journeyImage,omitempty"`
	Challenges           string          `json:"challenges" yaml:"challenges"`
	ChallengesImage      string          `json:"challengesImage,omitempty" yaml:"challengesImage,omitempty"`
	TechStackDetails     []string        `json:"techStackDetails" yaml:"techStackDetails"`
	GithubLink           string          `json:"githubLink,omitempty" yaml:"githubLink,omitempty"`
	DemoLink             string          `json:"demoLink,omitempty" yaml:"demoLink,omitempty"`
}

func (p Project) ItemID() string    { return p.ID }
func (p Project) ItemTitle() string { return p.Title }
func (p Project) ItemDate() string  { return p.Date }
func (p Project) IsFeatured() bool  { return p.Featured }

// Clone returns a copy that shares no slices with p.
func (p Project) Clone() Project {
	p.Tags = slices.Clone(p.Tags)
	p.TechStackDetails = slices.Clone(p.TechStackDetails)
	return p
}

// Media is a video piece: an animation or an edit.
type Media struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	VideoURL    string   `json:"videoUrl" yaml:"videoUrl"`
	ImageURL    string   `json:"imageUrl" yaml:"imageUrl"`
	Featured    bool     `json:"featured" yaml:"featured"`
	Date        string   `json:"date" yaml:"date"`
	Software    []string `json:"software" yaml:"software"`
}

func (m Media) ItemID() string    { return m.ID }
func (m Media) ItemTitle() string { return m.Title }
func (m Media) ItemDate() string  { return m.Date }
func (m Media) IsFeatured() bool  { return m.Featured }

func (m Media) clone() Media {
	m.Software = slices.Clone(m.Software)
	return m
}

// Animation is a rendered animation clip.
type Animation struct {
	Media `yaml:",inline"`
}

func (a Animation) Clone() Animation { return Animation{Media: a.Media.clone()} }

// Edit is an edited video.
type Edit struct {
	Media `yaml:",inline"`
}

func (e Edit) Clone() Edit { return Edit{Media: e.Media.clone()} }

// BlogPost is an article made of ordered paragraphs.
type BlogPost struct {
	ID       string   `json:"id" yaml:"id"`
	Title    string   `json:"title" yaml:"title"`
	Excerpt  string   `json:"excerpt" yaml:"excerpt"`
	Date     string   `json:"date" yaml:"date"`
	ReadTime string   `json:"readTime" yaml:"readTime"`
	ImageURL string   `json:"imageUrl" yaml:"imageUrl"`
	Featured bool     `json:"featured" yaml:"featured"`
	Tags     []string `json:"tags" yaml:"tags"`
	Author   string   `json:"author" yaml:"author"`
	Content  []string `json:"content" yaml:"content"`

	// ContentHTML is derived from Content at load time.
	ContentHTML []string `json:"contentHtml,omitempty" yaml:"-"`
}

func (b BlogPost) ItemID() string    { return b.ID }
func (b BlogPost) ItemTitle() string { return b.Title }
func (b BlogPost) ItemDate() string  { return b.Date }
func (b BlogPost) IsFeatured() bool  { return b.Featured }

func (b BlogPost) Clone() BlogPost {
	b.Tags = slices.Clone(b.Tags)
	b.Content = slices.Clone(b.Content)
	b.ContentHTML = slices.Clone(b.ContentHTML)
	return b
}

// Milestone is one entry of the about-page timeline.
type Milestone struct {
	Year  string `json:"year" yaml:"year"`
	Title string `json:"title" yaml:"title"`
	Desc  string `json:"desc" yaml:"desc"`
}

type Education struct {
	School   string `json:"school" yaml:"school"`
	Location string `json:"location" yaml:"location"`
	Details  string `json:"details" yaml:"details"`
}

// Profile is the static site copy: hero, about and footer text.
type Profile struct {
	Greeting  string      `json:"greeting" yaml:"greeting"`
	Tagline   string      `json:"tagline" yaml:"tagline"`
	Name      string      `json:"name" yaml:"name"`
	Role      string      `json:"role" yaml:"role"`
	Intro     string      `json:"intro" yaml:"intro"`
	Secondary string      `json:"secondary" yaml:"secondary"`
	Story     string      `json:"story" yaml:"story"`
	Education Education   `json:"education" yaml:"education"`
	Journey   []Milestone `json:"journey" yaml:"journey"`
	Footer    string      `json:"footer" yaml:"footer"`
	Email     string      `json:"email" yaml:"email"`
	Location  string      `json:"location" yaml:"location"`
}

func (p Profile) Clone() Profile {
	p.Journey = slices.Clone(p.Journey)
	return p
}

// Catalog is the complete content set of the site.
type Catalog struct {
	Profile    Profile     `json:"profile" yaml:"profile"`
	Projects   []Project   `json:"projects" yaml:"projects"`
	Animations []Animation `json:"animations" yaml:"animations"`
	Edits      []Edit      `json:"edits" yaml:"edits"`
	Blog       []BlogPost  `json:"blog" yaml:"blog"`
}
