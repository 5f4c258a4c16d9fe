//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"commerce-ledger/cmd/bootstrap"
	"commerce-ledger/cmd/bootstrap/components"
	"commerce-ledger/internal/infra/db"
	"commerce-ledger/internal/pkg/config"
	"commerce-ledger/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "ledger"
	pgPassword = "ledgerpass"
	pgPort     = nat.Port("5432/tcp")

	// concurrent sale and redemption tests open one connection per request
	poolMaxConns = 40
)

var (
	pgOnce      sync.Once
	pgContainer testcontainers.Container
	pgErr       error
)

type pgEndpoint struct {
	Host string
	Port nat.Port
}

func (e pgEndpoint) dsn(dbName string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", pgUser, pgPassword, e.Host, e.Port.Port(), dbName)
}

// ------------------------------------------------------------
// 各テストプロセス用にセットアップ
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) (*pgxpool.Pool, *gin.Engine, config.Config) {
	gin.SetMode(gin.TestMode)

	endpoint := sharedPostgres(t)
	dbConfig := createIsolatedDatabase(t, endpoint)

	pool, _, err := db.Connect(context.Background(), dbConfig)
	require.NoError(t, err, "データベース接続に失敗")
	t.Cleanup(pool.Close)

	// 本番と同じ goose の埋め込みマイグレーションを適用
	require.NoError(t, db.Migrate(pool), "データベースマイグレーションに失敗")

	cfg := newE2EConfig(dbConfig)
	router := startApp(t, pool, cfg)

	slog.Info("E2E環境の準備が完了しました", "database", dbConfig.DBName, "postgres_port", endpoint.Port.Port())
	return pool, router, cfg
}

// ------------------------------------------------------------
// PostgreSQLコンテナはプロセス内で一度だけ起動する
// ------------------------------------------------------------
func sharedPostgres(t *testing.T) pgEndpoint {
	pgOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		pgContainer, pgErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: postgresRequest(),
			Started:          true,
		})
	})
	require.NoError(t, pgErr, "PostgreSQLコンテナの起動に失敗")

	ctx := context.Background()
	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	port, err := pgContainer.MappedPort(ctx, pgPort)
	require.NoError(t, err)
	return pgEndpoint{Host: host, Port: port}
}

// ryuk reaps the container when the test binary exits.
func postgresRequest() testcontainers.ContainerRequest {
	return testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{string(pgPort)},
		Env: map[string]string{
			"POSTGRES_USER":     pgUser,
			"POSTGRES_PASSWORD": pgPassword,
			"POSTGRES_DB":       "postgres",
		},
		Tmpfs: map[string]string{
			"/var/lib/postgresql/data": "rw,size=512m",
		},
		// 耐久性は不要。行ロックの競合テスト用に接続数だけ確保する
		Cmd: []string{
			"postgres",
			"-c", "fsync=off",
			"-c", "full_page_writes=off",
			"-c", "synchronous_commit=off",
			"-c", "max_connections=200",
			"-c", "deadlock_timeout=100ms",
			"-c", "log_statement=none",
		},
		WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
			return pgEndpoint{Host: host, Port: port}.dsn("postgres")
		}).WithStartupTimeout(60 * time.Second),
		Labels: map[string]string{"purpose": "commerce-ledger-e2e"},
	}
}

// ------------------------------------------------------------
// テストプロセス毎に専用データベースを作成
// ------------------------------------------------------------
func createIsolatedDatabase(t *testing.T, endpoint pgEndpoint) config.DBConfig {
	dbName := "ledger_" + strings.ReplaceAll(uuid.New().String(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, endpoint.dsn("postgres"))
	require.NoError(t, err, "管理者接続に失敗")
	defer admin.Close()

	// 並列に CREATE DATABASE すると template1 のロック競合で失敗することがある
	var createErr error
	for attempt := range 5 {
		if attempt > 0 {
			backoff := min(time.Duration(attempt)*500*time.Millisecond, 3*time.Second)
			slog.Warn("データベース作成を再試行中", "attempt", attempt+1, "error", createErr.Error(), "retry_wait", backoff)
			time.Sleep(backoff)
		}
		if _, createErr = admin.Exec(ctx, "CREATE DATABASE "+dbName); createErr == nil {
			break
		}
	}
	require.NoError(t, createErr, "テスト用データベースの作成に失敗")

	t.Cleanup(func() { dropDatabase(endpoint, dbName) })

	return config.DBConfig{
		Host:     endpoint.Host,
		Port:     endpoint.Port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: "Asia/Tokyo",
		MaxConns: poolMaxConns,
	}
}

func dropDatabase(endpoint pgEndpoint, dbName string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, endpoint.dsn("postgres"))
	if err != nil {
		slog.Warn("クリーンアップ用のデータベース接続に失敗しました", "database", dbName, "error", err.Error())
		return
	}
	defer admin.Close()

	if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+dbName+" WITH (FORCE)"); err != nil {
		slog.Warn("テストデータベースの削除に失敗しました", "database", dbName, "error", err.Error())
	}
}

// Kafka は使わず、通知はログ出力と notification_jobs への記録のみ
func newE2EConfig(dbConfig config.DBConfig) config.Config {
	cfg := config.NewTestConfig()
	cfg.DB = dbConfig
	cfg.DB.AutoMigrate = false
	cfg.Kafka.Enabled = false
	cfg.Tracing.Enabled = false
	cfg.Notify.QueueSize = 64
	return cfg
}

// ------------------------------------------------------------
// 本番と同じ fx モジュールでルーターを組み立てる (DB と config だけ差し替え)
// ------------------------------------------------------------
func startApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	var router *gin.Engine

	app := fx.New(
		fx.Supply(pool, cfg),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.TracingModule,
		components.PersistenceModule,
		components.UseCaseModule,
		bootstrap.NotificationModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	startCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(startCtx), "fxアプリケーションの起動に失敗しました")
	require.NotNil(t, router, "Routerのセットアップに失敗")

	// 通知ワーカーを止めてから DB を閉じる
	t.Cleanup(func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(stopCtx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})
	return router
}

// ------------------------------------------------------------
// E2Eテストスイートで共通のセットアップ
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	s.DB, s.Router, s.Config = setupE2EEnvironment(s.T())
}

// SetupSubTest gives every s.Run case an empty ledger.
func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "Failed to reset database state")
}
