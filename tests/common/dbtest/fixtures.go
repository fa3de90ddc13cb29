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

const (
	StatusConfirmed           = "confirmed"
	StatusPendingConfirmation = "pending_confirmation"
)

func CreateSubscriber(t *testing.T, db DBLike, email, status string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO subscriptions (id, email, name, status) VALUES ($1, $2, $3, $4)",
		id, email, strings.Split(email, "@")[0], status)
	require.NoError(t, err)
	return id
}

// creates n confirmed subscribers named reader-<i>@example.com and returns their addresses
func CreateConfirmedSubscribers(t *testing.T, db DBLike, n int) []string {
	t.Helper()

	emails := make([]string, 0, n)
	for i := range n {
		email := fmt.Sprintf("reader-%d@example.com", i)
		CreateSubscriber(t, db, email, StatusConfirmed)
		emails = append(emails, email)
	}
	return emails
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountIssues(t *testing.T, db DBLike) int {
	t.Helper()
	return CountRows(t, db, "newsletter_issues")
}

func CountDeliveryTasks(t *testing.T, db DBLike) int {
	t.Helper()
	return CountRows(t, db, "issue_delivery_queue")
}

func CountIdempotencyRecords(t *testing.T, db DBLike) int {
	t.Helper()
	return CountRows(t, db, "idempotency")
}

// lists queued recipients for an issue in address order
func DeliveryRecipients(t *testing.T, db *pgxpool.Pool, issueID uuid.UUID) []string {
	t.Helper()

	rows, err := db.Query(context.Background(),
		"SELECT subscriber_email FROM issue_delivery_queue WHERE newsletter_issue_id = $1 ORDER BY subscriber_email", issueID)
	require.NoError(t, err)
	defer rows.Close()

	var out []string
	for rows.Next() {
		var email string
		require.NoError(t, rows.Scan(&email))
		out = append(out, email)
	}
	require.NoError(t, rows.Err())
	return out
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
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
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
