package testutil

import (
	"context"
	"database/sql"
	"sync/atomic"

	"github.com/alexanderramin/nexus/internal/db"
)

// FailOnNthExec wraps a DBTX and injects Err on the Nth ExecContext call
// (counted from 1), and on every later call when Sticky is set. Reads pass
// through untouched. It simulates a store whose writes start failing, for
// example on a full disk.
type FailOnNthExec struct {
	db.DBTX
	FailOn int32
	Sticky bool
	Err    error

	count atomic.Int32
}

// NewFailOnNthExec wraps conn so that the nth write fails with err.
func NewFailOnNthExec(conn db.DBTX, n int32, err error) *FailOnNthExec {
	return &FailOnNthExec{DBTX: conn, FailOn: n, Err: err}
}

func (f *FailOnNthExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	n := f.count.Add(1)
	if n == f.FailOn || (f.Sticky && n > f.FailOn) {
		return nil, f.Err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}

// Execs reports how many ExecContext calls were attempted.
func (f *FailOnNthExec) Execs() int32 {
	return f.count.Load()
}
