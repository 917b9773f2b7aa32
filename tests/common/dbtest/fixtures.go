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

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	// bcrypt hash of "password123"
	passwordHash := "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."
	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, passwordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1 AND is_active = true", email).Scan(&userID)
	}

	return userID
}

func CreateTestBracelet(t *testing.T, db DBLike, slug string) uuid.UUID {
	t.Helper()

	braceletID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO bracelets (id, slug, name, path_d, length_mm, base_price_cents, is_active)
		VALUES ($1, $2, $2, 'M 0 0 L 180 0', 180, 3000, true) ON CONFLICT (slug) DO NOTHING`,
		braceletID, slug)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM bracelets WHERE slug = $1", slug).Scan(&braceletID)
	}

	return braceletID
}

func CreateTestCharm(t *testing.T, db DBLike, sku string, stock int32) uuid.UUID {
	t.Helper()

	charmID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO charms (id, sku, name, price_cents, width_mm, height_mm, max_per_bracelet, stock, is_active)
		VALUES ($1, $2, $3, 500, 8, 6, 10, $4, true) ON CONFLICT (sku) DO NOTHING`,
		charmID, sku, sku, stock)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM charms WHERE sku = $1", sku).Scan(&charmID)
	}

	return charmID
}

// inserts basic catalog rows needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO bracelets (slug, name, path_d, length_mm, base_price_cents, is_active) VALUES
		    ('classic-chain', 'Classic Chain', 'M 0 0 L 180 0', 180, 3000, true),
		    ('curved-bangle', 'Curved Bangle', 'M 0 0 C 0 80 170 80 170 0', 170, 4500, true)
		ON CONFLICT (slug) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO charms (sku, name, price_cents, width_mm, height_mm, max_per_bracelet, stock, is_active) VALUES
		    ('CHM-STAR', 'Star', 500, 8, 6, 10, 25, true),
		    ('CHM-MOON', 'Moon', 650, 7, 9, 5, 12, true),
		    ('CHM-HEART', 'Heart', 550, 6, 6, 10, 0, true)
		ON CONFLICT (sku) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
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

	return SeedReferenceData(pool)
}
