//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"lounge-engine/cmd/bootstrap"
	"lounge-engine/cmd/bootstrap/components"
	"lounge-engine/internal/pkg/config"
	"lounge-engine/tests/common/storetest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

var (
	storeContainerOnce sync.Once
	storeTestContainer testcontainers.Container

	adminEmail    = "e2e@example.com"
	adminPassword = "e2e-admin-password"
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

// ------------------------------------------------------------
// Per-process environment setup
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) (*storetest.Admin, *gin.Engine, config.Config) {
	storeInfo := startContainers(t)

	store, storeCfg := prepareStore(t, storeInfo)

	router, cfg, app := buildE2EApp(storeCfg)
	require.NotNil(t, router, "Router setup failed")

	// Register cleanup for the fx app
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("Failed to stop fx application", "error", err.Error())
		}
	})

	slog.Info("E2E environment ready",
		"store_host", storeInfo.Host,
		"store_port", storeInfo.Port.Port())

	return store, router, cfg
}

// ------------------------------------------------------------
// Container startup
// ------------------------------------------------------------
func startContainers(t *testing.T) ContainerInfo {
	gin.SetMode(gin.TestMode)
	startRecordStoreContainerOnce(t)

	storeInfo, err := getContainerHostPort(storeTestContainer, "8090/tcp")
	require.NoError(t, err, "Failed to read record store container info")

	return storeInfo
}

// ------------------------------------------------------------
// Record store preparation
// ------------------------------------------------------------
func prepareStore(t *testing.T, storeInfo ContainerInfo) (*storetest.Admin, config.RecordStoreConfig) {
	baseURL := fmt.Sprintf("http://%s:%s", storeInfo.Host, storeInfo.Port.Port())

	store, err := storetest.NewAdmin(baseURL, adminEmail, adminPassword)
	require.NoError(t, err, "Admin authentication against the record store failed")

	require.NoError(t, ensureCollections(store), "Collection setup failed")

	storeCfg := config.RecordStoreConfig{
		BaseURL:    baseURL,
		AuthToken:  store.Token,
		Timeout:    10 * time.Second,
		MaxPerPage: 200,
	}
	return store, storeCfg
}

// ------------------------------------------------------------
// Application construction for E2E tests
// Returns router, config, and fx.App for proper lifecycle management
// ------------------------------------------------------------
func buildE2EApp(storeCfg config.RecordStoreConfig) (*gin.Engine, config.Config, *fx.App) {
	var router *gin.Engine
	var cfg config.Config

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config {
			return createTestConfig(storeCfg)
		}),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.RecordStoreModule,
		bootstrap.JWTModule,
		components.RepositoryModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router, &cfg),

		// Silence fx's own startup logging
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	if router == nil {
		panic("fx application startup failed")
	}

	return router, cfg, app
}

func createTestConfig(storeCfg config.RecordStoreConfig) config.Config {
	testConfig := config.NewTestConfig()
	testConfig.RecordStore = storeCfg
	// Keep the background availability sweep out of the request flow under test.
	testConfig.Availability.RefreshInterval = 0
	return testConfig
}

// ------------------------------------------------------------
// Generic container startup helper
// ------------------------------------------------------------
func startGenericContainer(req testcontainers.ContainerRequest, timeoutSec int) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

// ------------------------------------------------------------
// Start the record store container once and reuse it
// ------------------------------------------------------------
func startRecordStoreContainerOnce(t *testing.T) {
	storeContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "ghcr.io/muchobien/pocketbase:0.22.21",
			ExposedPorts: []string{"8090/tcp"},
			Tmpfs: map[string]string{
				"/pb_data": "rw,size=128m", // keep store data in RAM
			},
			WaitingFor: wait.ForHTTP("/api/health").
				WithPort("8090/tcp").
				WithStartupTimeout(60 * time.Second),
			Name:   "recordstore-e2e",
			Labels: map[string]string{"purpose": "e2e-tests"},
		}

		var err error
		storeTestContainer, err = startGenericContainer(req, 180)
		require.NoError(t, err, "Failed to start record store container")

		createAdminAccount(t, storeTestContainer)

		// Manual container cleanup (for when RYUK is disabled)
		t.Cleanup(func() {
			if storeTestContainer != nil {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := storeTestContainer.Terminate(ctx); err != nil {
					slog.Warn("Failed to terminate record store container", "error", err.Error())
				}
			}
		})
	})
}

// createAdminAccount provisions the admin the test harness authenticates as.
// The store has no env-based bootstrap for this, so it goes through the CLI
// inside the container.
func createAdminAccount(t *testing.T, c testcontainers.Container) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	code, _, err := c.Exec(ctx, []string{
		"/usr/local/bin/pocketbase", "admin", "create",
		adminEmail, adminPassword,
		"--dir", "/pb_data",
	})
	require.NoError(t, err, "Admin account creation failed")
	require.Zero(t, code, "Admin account creation exited non-zero")
}

// ------------------------------------------------------------
// Shared container utilities
// ------------------------------------------------------------
func getContainerHostPort(c testcontainers.Container, port string) (ContainerInfo, error) {
	ctx := context.Background()
	mappedPort, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return ContainerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mappedPort}, nil
}

// ------------------------------------------------------------
// Shared setup for E2E test suites
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	Store  *storetest.Admin
	Config config.Config
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	store, router, cfg := setupE2EEnvironment(t)
	s.Store = store
	s.Router = router
	s.Config = cfg
	require.NotNil(t, store, "Store setup failed")
	require.NotEmpty(t, s.Config, "Config retrieval failed")
	require.NotNil(t, s.Router, "Router setup failed")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

func (s *SharedSuite) SetupSubTest() {
	// Each subtest starts from an empty store and seeds what it needs.
	err := s.Store.ResetData(CollectionResetOrder...)
	require.NoError(s.T(), err, "Failed to reset record store state")
}
