package testhelpers

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"elocalpass/internal/models"
	"elocalpass/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap/zaptest"
)

// TestDB holds the database connection for testing
type TestDB struct {
	Pool *pgxpool.Pool
}

// SetupTestDB returns a migrated database. TEST_DATABASE_URL points at an
// existing server; otherwise a throwaway postgres container is started.
// Callers skip in -short mode before calling it.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	connString := os.Getenv("TEST_DATABASE_URL")
	if connString == "" {
		pgContainer, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("elocalpass"),
			postgres.WithUsername("postgres"),
			postgres.WithPassword("postgres"),
			testcontainers.WithWaitStrategy(wait.ForListeningPort("5432/tcp").WithStartupTimeout(2*time.Minute)),
		)
		require.NoError(t, err)
		t.Cleanup(func() {
			_ = pgContainer.Terminate(context.Background())
		})

		connString, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err)
	}

	logger := zaptest.NewLogger(t)
	pool, err := database.NewPool(ctx, database.PoolConfig{DSN: connString, MaxConns: 5}, logger)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, database.Migrate(ctx, pool, logger))
	return &TestDB{Pool: pool}
}

// SetupTestUser inserts a user with the given role and returns its id.
func SetupTestUser(t *testing.T, db *TestDB, role models.Role) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	query := `
		INSERT INTO users (id, email, password_hash, name, role, is_active)
		VALUES ($1, $2, $3, $4, $5, TRUE)
	`
	email := fmt.Sprintf("%s@elocalpass.test", userID)
	_, err := db.Pool.Exec(context.Background(), query, userID, email, "not-a-hash", "Test "+string(role), role)
	require.NoError(t, err, "create test user")
	return userID
}

// SetupTestDistributor creates a distributor and its owning user.
func SetupTestDistributor(t *testing.T, db *TestDB, active bool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Pool.Exec(context.Background(),
		`INSERT INTO distributors (id, user_id, name, is_active) VALUES ($1, $2, $3, $4)`,
		id, SetupTestUser(t, db, models.RoleDistributor), "Test Distributor", active)
	require.NoError(t, err, "create test distributor")
	return id
}

// SetupTestLocation creates a location under distributorID.
func SetupTestLocation(t *testing.T, db *TestDB, distributorID uuid.UUID, active bool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Pool.Exec(context.Background(),
		`INSERT INTO locations (id, distributor_id, user_id, name, is_active) VALUES ($1, $2, $3, $4, $5)`,
		id, distributorID, SetupTestUser(t, db, models.RoleLocation), "Test Location", active)
	require.NoError(t, err, "create test location")
	return id
}

// SetupTestSeller creates a seller under locationID.
func SetupTestSeller(t *testing.T, db *TestDB, locationID uuid.UUID, active bool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Pool.Exec(context.Background(),
		`INSERT INTO sellers (id, location_id, user_id, name, is_active) VALUES ($1, $2, $3, $4, $5)`,
		id, locationID, SetupTestUser(t, db, models.RoleSeller), "Test Seller", active)
	require.NoError(t, err, "create test seller")
	return id
}

// SetupTestQRCode creates a QR code issued by sellerID for the customer.
func SetupTestQRCode(t *testing.T, db *TestDB, sellerID uuid.UUID, customerEmail string, createdAt time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	query := `
		INSERT INTO qr_codes (id, code, seller_id, customer_name, customer_email, guests, days, cost, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, 2, 3, 0, $6, $7)
	`
	_, err := db.Pool.Exec(context.Background(), query,
		id, "EL-"+id.String()[:8], sellerID, "Test Customer", customerEmail, createdAt.Add(72*time.Hour), createdAt)
	require.NoError(t, err, "create test qr code")
	return id
}

// SetupTestAccessToken creates a customer access token expiring at expiresAt.
func SetupTestAccessToken(t *testing.T, db *TestDB, customerEmail string, expiresAt time.Time) string {
	t.Helper()

	token := uuid.NewString()
	_, err := db.Pool.Exec(context.Background(),
		`INSERT INTO customer_access_tokens (id, token, customer_email, customer_name, expires_at) VALUES ($1, $2, $3, $4, $5)`,
		uuid.New(), token, customerEmail, "Test Customer", expiresAt)
	require.NoError(t, err, "create test access token")
	return token
}

// IsActive reads the flag of one hierarchy row straight from the table.
func IsActive(t *testing.T, db *TestDB, table string, id uuid.UUID) bool {
	t.Helper()

	var active bool
	err := db.Pool.QueryRow(context.Background(), `SELECT is_active FROM `+table+` WHERE id = $1`, id).Scan(&active)
	require.NoError(t, err)
	return active
}
