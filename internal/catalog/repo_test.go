package catalog

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	// The products table is externally owned; tests stand in for whoever
	// provisions it.
	require.NoError(t, conn.Exec(`
CREATE TABLE IF NOT EXISTS products (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  title TEXT NOT NULL,
  price NUMERIC NOT NULL
);`).Error)
	return conn
}

func TestListAllReturnsOpaqueRows(t *testing.T) {
	conn := newTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	require.NoError(t, conn.Exec(`INSERT INTO products (title, price) VALUES ('Shirt', 19.99), ('Hat', 9.50)`).Error)

	rows, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	titles := []string{}
	for _, row := range rows {
		titles = append(titles, fmt.Sprint(row["title"]))
	}
	assert.Contains(t, titles, "Shirt")
	assert.Contains(t, titles, "Hat")
}

func TestListAllEmptyTable(t *testing.T) {
	conn := newTestDB(t)
	repo := NewRepository(conn)

	rows, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}
