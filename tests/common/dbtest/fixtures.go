//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type AccountFixture struct {
	ID     uuid.UUID
	UserID int64
	Email  string
	Role   string
}

// CreateTestAccount inserts an active account with the given balance.
func CreateTestAccount(t *testing.T, db DBLike, userID int64, email, role string, points int64) AccountFixture {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO users (id, user_id, email, first_name, last_name, points, role, status)
		VALUES ($1, $2, $3, 'Test', 'User', $4, $5, 'ACTIVE')`,
		id, userID, email, points, role)
	require.NoError(t, err)

	return AccountFixture{ID: id, UserID: userID, Email: email, Role: role}
}

// CreateTestBenefit inserts an active benefit.
func CreateTestBenefit(t *testing.T, db DBLike, name string, cost int64, requiresJourney bool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO benefits (id, name, detail, cost, requires_journey, status)
		VALUES ($1, $2, 'fixture', $3, $4, 'ACTIVE')`,
		id, name, cost, requiresJourney)
	require.NoError(t, err)

	return id
}

func DeactivateAccount(t *testing.T, db DBLike, userID int64) {
	t.Helper()
	_, err := db.Exec(context.Background(), `UPDATE users SET status = 'INACTIVE' WHERE user_id = $1`, userID)
	require.NoError(t, err)
}

func Balance(t *testing.T, db DBLike, userID int64) int64 {
	t.Helper()

	var points int64
	err := db.QueryRow(context.Background(), `SELECT points FROM users WHERE user_id = $1`, userID).Scan(&points)
	require.NoError(t, err)
	return points
}

func CountRedemptions(t *testing.T, db DBLike, userID int64) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), `SELECT count(*) FROM redemptions WHERE user_id = $1`, userID).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every table in the public schema.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
