//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"wedding-rsvp/cmd/bootstrap"
	"wedding-rsvp/cmd/bootstrap/components"
	"wedding-rsvp/internal/domain/guest"
	"wedding-rsvp/internal/infra/repository"
	"wedding-rsvp/internal/pkg/config"
	"wedding-rsvp/internal/pkg/password"
	"wedding-rsvp/tests/common/builder"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// ------------------------------------------------------------
// Each suite gets its own data directory
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T, guests []*guest.Guest) (*gin.Engine, config.Config) {
	gin.SetMode(gin.TestMode)

	cfg := createTestConfig(t, t.TempDir())
	seedGuests(t, cfg.Storage.GuestsFile, guests)

	router, app := buildE2EApp(cfg)
	require.NotNil(t, router, "router setup failed")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})

	return router, cfg
}

func seedGuests(t *testing.T, path string, guests []*guest.Guest) {
	t.Helper()
	err := repository.NewGuestRepository(path).Save(context.Background(), guests)
	require.NoError(t, err, "failed to seed guest list")
}

// ------------------------------------------------------------
// The production graph minus env loading and the HTTP listener
// ------------------------------------------------------------
func buildE2EApp(cfg config.Config) (*gin.Engine, *fx.App) {
	var router *gin.Engine

	app := fx.New(
		fx.Supply(cfg),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.SecurityModule,
		bootstrap.StorageModule,
		bootstrap.JWTModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("failed to start fx app: %v", err))
	}

	return router, app
}

func createTestConfig(t *testing.T, dir string) config.Config {
	t.Helper()

	hash, err := password.HashPassword(builder.AdminTestPassword)
	require.NoError(t, err)

	cfg := config.NewTestConfig()
	cfg.Storage.GuestsFile = filepath.Join(dir, "guests.json")
	cfg.Storage.RSVPsFile = filepath.Join(dir, "rsvps.json")
	cfg.RateLimit.Dir = filepath.Join(dir, "rate_limits")
	cfg.Admin.PasswordHash = hash
	return cfg
}

// ------------------------------------------------------------
// Shared suite for the e2e packages
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	Config config.Config
	Guests []*guest.Guest
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	if s.Guests == nil {
		s.Guests = builder.Guests("John Smith", "Jane Doe", "Jean Dupont", "George Brown", "George Black")
	}
	s.Router, s.Config = setupE2EEnvironment(t, s.Guests)
	require.NotEmpty(t, s.Config.Storage.RSVPsFile)
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

// SetupSubTest clears stored responses and rate-limit windows so subtests
// start from an empty event.
func (s *SharedSuite) SetupSubTest() {
	err := os.Remove(s.Config.Storage.RSVPsFile)
	if err != nil && !os.IsNotExist(err) {
		require.NoError(s.T(), err, "failed to reset responses")
	}

	entries, err := os.ReadDir(s.Config.RateLimit.Dir)
	require.NoError(s.T(), err)
	for _, e := range entries {
		require.NoError(s.T(), os.Remove(filepath.Join(s.Config.RateLimit.Dir, e.Name())))
	}
}
