//go:build integration

package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/yigit/student-api/internal/app/migrations"
	"github.com/yigit/student-api/internal/app/models"
	"github.com/yigit/student-api/internal/db"
	"github.com/yigit/student-api/internal/pkg/apperrors"
)

type RepositoryIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	pool      *pgxpool.Pool
	repos     *Repositories
}

func (s *RepositoryIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	pool, err := pgxpool.New(s.ctx, connStr)
	s.Require().NoError(err)
	s.pool = pool

	migrator := migrations.NewMigrator(pool)
	s.Require().NoError(migrator.Migrate(s.ctx))
	// a second run must be a no-op
	s.Require().NoError(migrator.Migrate(s.ctx))

	s.repos = NewRepositories(db.NewExecutor(pool, zerolog.Nop()))
}

func (s *RepositoryIntegrationSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *RepositoryIntegrationSuite) SetupTest() {
	_, err := s.pool.Exec(s.ctx, "TRUNCATE articles, vendors, markets, users, students RESTART IDENTITY CASCADE")
	s.Require().NoError(err)
}

func TestRepositoryIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RepositoryIntegrationSuite))
}

func (s *RepositoryIntegrationSuite) countRows(table string) int {
	var n int
	s.Require().NoError(s.pool.QueryRow(s.ctx, "SELECT count(*) FROM "+table).Scan(&n))
	return n
}

func (s *RepositoryIntegrationSuite) TestSchemaMigrationsRecorded() {
	var versions []string
	rows, err := s.pool.Query(s.ctx, "SELECT version FROM schema_migrations ORDER BY version")
	s.Require().NoError(err)
	defer rows.Close()
	for rows.Next() {
		var v string
		s.Require().NoError(rows.Scan(&v))
		versions = append(versions, v)
	}
	s.Equal([]string{"001", "002"}, versions)
}

func (s *RepositoryIntegrationSuite) TestStudentLifecycle() {
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	student := &models.Student{StudentID: "S1", StudentName: "Ann", Course: "CS"}
	student.PresentDate.Time, student.PresentDate.Valid = date, true

	created, err := s.repos.StudentRepository.Create(s.ctx, student)
	s.Require().NoError(err)
	s.Equal("S1", created.StudentID)
	s.True(created.PresentDate.Time.Equal(date))

	_, err = s.repos.StudentRepository.Create(s.ctx, student)
	s.ErrorIs(err, apperrors.ErrConflict)
	s.Equal(1, s.countRows("students"))

	exists, err := s.repos.StudentRepository.Exists(s.ctx, "S1")
	s.Require().NoError(err)
	s.True(exists)

	course := "Math"
	updated, err := s.repos.StudentRepository.Update(s.ctx, "S1", models.StudentChanges{Course: &course})
	s.Require().NoError(err)
	s.Equal("Math", updated.Course)
	s.Equal("Ann", updated.StudentName)
	s.True(updated.PresentDate.Time.Equal(date))

	_, err = s.repos.StudentRepository.Update(s.ctx, "S2", models.StudentChanges{Course: &course})
	s.ErrorIs(err, apperrors.ErrResourceNotFound)
}

func (s *RepositoryIntegrationSuite) TestUserUniqueness() {
	_, err := s.repos.UserRepository.Create(s.ctx, &models.User{Username: "ann", Email: "ann@example.com"})
	s.Require().NoError(err)

	_, err = s.repos.UserRepository.Create(s.ctx, &models.User{Username: "ann", Email: "other@example.com"})
	s.Equal(ErrUsernameTaken, err)

	_, err = s.repos.UserRepository.Create(s.ctx, &models.User{Username: "bob", Email: "ann@example.com"})
	s.Equal(ErrEmailTaken, err)

	s.Equal(ErrUsernameTaken, s.repos.UserRepository.FindConflict(s.ctx, "ann", "x@example.com"))
	s.NoError(s.repos.UserRepository.FindConflict(s.ctx, "carol", "carol@example.com"))

	users, err := s.repos.UserRepository.List(s.ctx)
	s.Require().NoError(err)
	s.Len(users, 1)
}

func (s *RepositoryIntegrationSuite) TestMarketsAndVendors() {
	lat := 52.52
	for _, label := range []string{"Sunday Market", "Harbour Market"} {
		_, err := s.repos.MarketRepository.Create(s.ctx, &models.Market{ImageLink: "img", Label: label, Latitude: &lat})
		s.Require().NoError(err)
	}

	markets, err := s.repos.MarketRepository.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(markets, 2)
	s.Equal("Harbour Market", markets[0].Label)
	s.Equal(lat, *markets[0].Latitude)
	s.Nil(markets[0].Description)

	_, err = s.repos.MarketRepository.GetByID(s.ctx, 999999)
	s.ErrorIs(err, apperrors.ErrResourceNotFound)

	vendor, err := s.repos.VendorRepository.Create(s.ctx, &models.Vendor{
		ImageLink: "img",
		Name:      "Green Acres",
		Markets:   []int64{markets[0].ID, markets[1].ID},
		Products:  []string{"kale", "eggs"},
	})
	s.Require().NoError(err)

	fetched, err := s.repos.VendorRepository.GetByID(s.ctx, vendor.ID)
	s.Require().NoError(err)
	s.Equal([]string{"kale", "eggs"}, fetched.Products)
	s.Len(fetched.Markets, 2)
}

func (s *RepositoryIntegrationSuite) TestArticles() {
	user, err := s.repos.UserRepository.Create(s.ctx, &models.User{Username: "ann", Email: "ann@example.com"})
	s.Require().NoError(err)
	market, err := s.repos.MarketRepository.Create(s.ctx, &models.Market{ImageLink: "img", Label: "Harbour"})
	s.Require().NoError(err)

	_, err = s.repos.ArticleRepository.Create(s.ctx, &models.Article{UserID: 424242, Title: "t", Content: "c"})
	s.Equal(ErrUnknownUser, err)
	s.Equal(0, s.countRows("articles"))

	missing := int64(424242)
	_, err = s.repos.ArticleRepository.Create(s.ctx, &models.Article{UserID: user.ID, MarketID: &missing, Title: "t", Content: "c"})
	s.Equal(ErrUnknownMarket, err)

	first, err := s.repos.ArticleRepository.Create(s.ctx, &models.Article{UserID: user.ID, Title: "first", Content: "c"})
	s.Require().NoError(err)
	second, err := s.repos.ArticleRepository.Create(s.ctx, &models.Article{UserID: user.ID, MarketID: &market.ID, Title: "second", Content: "c"})
	s.Require().NoError(err)

	got, err := s.repos.ArticleRepository.GetByID(s.ctx, second.PostID)
	s.Require().NoError(err)
	s.Equal("ann", got.Username)
	s.Require().NotNil(got.MarketLabel)
	s.Equal("Harbour", *got.MarketLabel)

	list, err := s.repos.ArticleRepository.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal(second.PostID, list[0].PostID)
	s.Equal(first.PostID, list[1].PostID)
	s.Nil(list[1].MarketLabel)
}
