package testutil

import (
	"context"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/triviaswwe/tw-database-web-sub000/internal/api"
	"github.com/triviaswwe/tw-database-web-sub000/internal/config"
	"github.com/triviaswwe/tw-database-web-sub000/internal/domain"
	"github.com/triviaswwe/tw-database-web-sub000/internal/logger"
	repoPostgres "github.com/triviaswwe/tw-database-web-sub000/internal/repository/postgres"
	"github.com/triviaswwe/tw-database-web-sub000/internal/service"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// TestDB manages a testcontainers PostgreSQL instance
type TestDB struct {
	Container testcontainers.Container
	DB        *gorm.DB
	DSN       string
}

// NewTestDB creates a new PostgreSQL testcontainer and returns a connection
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	container, err := tcPostgres.Run(ctx,
		"postgres:15-alpine",
		tcPostgres.WithDatabase("test_title_history"),
		tcPostgres.WithUsername("test"),
		tcPostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	db, err := gorm.Open(gormPostgres.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}

	// Run migrations
	err = db.AutoMigrate(
		&domain.Championship{},
		&domain.Wrestler{},
		&domain.Interpreter{},
		&domain.TagTeam{},
		&domain.Event{},
		&domain.Match{},
		&domain.MatchParticipant{},
		&domain.MatchTeamScore{},
		&domain.Reign{},
		&domain.ReignMember{},
	)
	if err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	testDB := &TestDB{
		Container: container,
		DB:        db,
		DSN:       dsn,
	}

	t.Cleanup(func() {
		testDB.Cleanup()
	})

	return testDB
}

// Cleanup terminates the container
func (tdb *TestDB) Cleanup() {
	if tdb.Container != nil {
		ctx := context.Background()
		tdb.Container.Terminate(ctx)
	}
}

// Truncate clears all tables for test isolation
func (tdb *TestDB) Truncate(t *testing.T) {
	t.Helper()

	tables := []string{
		"reign_members",
		"reigns",
		"match_team_scores",
		"match_participants",
		"matches",
		"events",
		"tag_teams",
		"interpreters",
		"wrestlers",
		"championships",
	}
	for _, table := range tables {
		if err := tdb.DB.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)).Error; err != nil {
			t.Fatalf("failed to truncate %s: %v", table, err)
		}
	}
}

// TestServer runs the full API against a TestDB
type TestServer struct {
	Server *httptest.Server
	DB     *TestDB
}

func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	testDB := NewTestDB(t)
	repos := repoPostgres.NewRepositories(testDB.DB)

	cfg := &config.Config{
		Port:            "0",
		Environment:     "test",
		DefaultPageSize: 20,
		MaxPageSize:     100,
	}
	log := logger.New("error")

	services := service.NewServices(repos, log)
	router := api.NewRouter(services, repos, cfg, log)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &TestServer{
		Server: server,
		DB:     testDB,
	}
}

// APIURL builds an absolute /api/v1 URL for the given path
func (ts *TestServer) APIURL(path string) string {
	return ts.Server.URL + "/api/v1" + path
}
