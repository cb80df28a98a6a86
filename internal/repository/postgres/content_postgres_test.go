package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/model"
)

var projectColumns = []string{
	"id", "title", "description", "tags", "image_url", "category", "featured", "date", "link",
	"full_description", "full_description_image", "journey", "journey_image",
	"challenges", "challenges_image", "tech_stack", "github_link", "demo_link",
}

var mediaColumns = []string{"id", "title", "description", "video_url", "image_url", "featured", "date", "software"}

func newMock(t *testing.T) (*ContentPostgres, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewContentPostgres(db), mock
}

func TestContentPostgres_Profile(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectQuery("SELECT data FROM profile").
			WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow([]byte(`{"name":"Hridik","email":"me@example.com"}`)))

		p, err := repo.Profile(ctx)

		require.NoError(t, err)
		assert.Equal(t, "Hridik", p.Name)
		assert.Equal(t, "me@example.com", p.Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not seeded", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectQuery("SELECT data FROM profile").WillReturnError(sql.ErrNoRows)

		p, err := repo.Profile(ctx)

		assert.ErrorIs(t, err, ErrNoProfile)
		assert.Nil(t, p)
	})

	t.Run("corrupt document", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectQuery("SELECT data FROM profile").
			WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow([]byte(`{`)))

		_, err := repo.Profile(ctx)

		assert.ErrorContains(t, err, "decode profile")
	})
}

func TestContentPostgres_ListProjects(t *testing.T) {
	repo, mock := newMock(t)
	ctx := context.Background()

	rows := sqlmock.NewRows(projectColumns).
		AddRow("p1", "Rover", "desc", []byte(`["ROS","C++"]`), "/img/rover.png", "robotics", true, "2024-03-01", "",
			"full", "", "journey", "", "challenges", "", []byte(`["Jetson"]`), "https://github.com/x/rover", "").
		AddRow("p2", "Sensor", "desc", []byte(`[]`), "", "iot", false, "2023-01-10", "",
			"", "", "", "", "", "", []byte(`[]`), "", "")

	mock.ExpectQuery("SELECT (.+) FROM projects ORDER BY position").WillReturnRows(rows)

	got, err := repo.ListProjects(ctx)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "p1", got[0].ID)
	assert.Equal(t, []string{"ROS", "C++"}, got[0].Tags)
	assert.Equal(t, model.ProjectRobotics, got[0].Category)
	assert.Equal(t, []string{"Jetson"}, got[0].TechStackDetails)
	assert.Empty(t, got[1].Tags)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentPostgres_ListProjects_Error(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectQuery("SELECT (.+) FROM projects").WillReturnError(errors.New("db down"))

	got, err := repo.ListProjects(context.Background())

	assert.EqualError(t, err, "db down")
	assert.Nil(t, got)
}

func TestContentPostgres_ListMedia(t *testing.T) {
	repo, mock := newMock(t)
	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM media WHERE kind = ?").
		WithArgs("animations").
		WillReturnRows(sqlmock.NewRows(mediaColumns).
			AddRow("a1", "Intro", "d", "https://v/1", "/i/1", true, "2024-01-01", []byte(`["Blender"]`)))
	mock.ExpectQuery("SELECT (.+) FROM media WHERE kind = ?").
		WithArgs("edits").
		WillReturnRows(sqlmock.NewRows(mediaColumns).
			AddRow("e1", "Reel", "d", "https://v/2", "/i/2", false, "2023-06-01", []byte(`["Premiere Pro","After Effects"]`)))

	animations, err := repo.ListAnimations(ctx)
	require.NoError(t, err)
	require.Len(t, animations, 1)
	assert.Equal(t, "a1", animations[0].ID)
	assert.Equal(t, []string{"Blender"}, animations[0].Software)

	edits, err := repo.ListEdits(ctx)
	require.NoError(t, err)
	require.Len(t, edits, 1)
	assert.Equal(t, []string{"Premiere Pro", "After Effects"}, edits[0].Software)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentPostgres_ListBlogPosts(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT (.+) FROM blog_posts").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "excerpt", "date", "read_time", "image_url", "featured", "tags", "author", "content"}).
			AddRow("b1", "Hello", "ex", "Oct 12, 2023", "5 min read", "", true, []byte(`["AI"]`), "Hridik", []byte(`["one","two"]`)))

	got, err := repo.ListBlogPosts(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"one", "two"}, got[0].Content)
	assert.Equal(t, []string{"AI"}, got[0].Tags)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentPostgres_ScanBadJSON(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT (.+) FROM media").
		WillReturnRows(sqlmock.NewRows(mediaColumns).
			AddRow("a1", "Intro", "d", "", "", true, "2024-01-01", []byte(`not json`)))

	_, err := repo.ListAnimations(context.Background())

	assert.ErrorContains(t, err, "stringList")
}

func sampleCatalog() *model.Catalog {
	return &model.Catalog{
		Profile:    model.Profile{Name: "Hridik"},
		Projects:   []model.Project{{ID: "p1", Title: "Rover", Category: model.ProjectRobotics}},
		Animations: []model.Animation{{Media: model.Media{ID: "a1", Title: "Intro"}}},
		Edits:      []model.Edit{{Media: model.Media{ID: "e1", Title: "Reel"}}},
		Blog:       []model.BlogPost{{ID: "b1", Title: "Hello", Content: []string{"one"}}},
	}
}

func TestContentPostgres_SaveCatalog(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectBegin()
		for _, table := range []string{"projects", "media", "blog_posts", "profile"} {
			mock.ExpectExec("DELETE FROM " + table).WillReturnResult(sqlmock.NewResult(0, 0))
		}
		mock.ExpectExec("INSERT INTO profile").WithArgs(sqlmock.AnyArg()).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO projects").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO media").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO media").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO blog_posts").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.SaveCatalog(context.Background(), sampleCatalog())

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert failure rolls back", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectBegin()
		for _, table := range []string{"projects", "media", "blog_posts", "profile"} {
			mock.ExpectExec("DELETE FROM " + table).WillReturnResult(sqlmock.NewResult(0, 0))
		}
		mock.ExpectExec("INSERT INTO profile").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO projects").WillReturnError(errors.New("check violation"))
		mock.ExpectRollback()

		err := repo.SaveCatalog(context.Background(), sampleCatalog())

		assert.ErrorContains(t, err, "insert project p1: check violation")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin failure", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectBegin().WillReturnError(errors.New("pool exhausted"))

		err := repo.SaveCatalog(context.Background(), sampleCatalog())

		assert.ErrorContains(t, err, "begin tx")
	})
}
