package testutil

import (
	"context"
	"testing"

	"github.com/alexanderramin/nexus/internal/db"
)

// StoredKeys lists the keys present in the kv_entries table, sorted.
func StoredKeys(t *testing.T, conn db.DBTX) []string {
	t.Helper()
	rows, err := conn.QueryContext(context.Background(), `SELECT key FROM kv_entries ORDER BY key`)
	if err != nil {
		t.Fatalf("listing keys: %v", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			t.Fatalf("scanning key: %v", err)
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("listing keys: %v", err)
	}
	return keys
}
