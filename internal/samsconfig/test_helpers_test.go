package samsconfig

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/eugenenazirov/samsconf/internal/dbconn"
)

// fakeConn serves a fixed proxy table keyed by proxy id.
type fakeConn struct {
	rows       map[int][2]int64
	connectErr error
	sendErr    error

	connects   int
	closed     bool
	queryClose bool
	stmts      []string
}

func (c *fakeConn) Connect(context.Context) error {
	c.connects++
	return c.connectErr
}

func (c *fakeConn) NewQuery() dbconn.Query {
	return &fakeQuery{conn: c}
}

func (c *fakeConn) Close() error {
	c.closed = true
	return nil
}

type fakeQuery struct {
	conn    *fakeConn
	binds   map[int]*int64
	pending [][2]int64
}

func (q *fakeQuery) BindCol(col int, dst *int64) error {
	if q.binds == nil {
		q.binds = make(map[int]*int64)
	}
	q.binds[col] = dst
	return nil
}

func (q *fakeQuery) SendQueryDirect(_ context.Context, stmt string) error {
	q.conn.stmts = append(q.conn.stmts, stmt)
	if q.conn.sendErr != nil {
		return q.conn.sendErr
	}
	id, err := strconv.Atoi(strings.TrimPrefix(stmt, proxyQuery))
	if err != nil {
		return fmt.Errorf("unexpected statement %q: %w", stmt, err)
	}
	if row, ok := q.conn.rows[id]; ok {
		q.pending = append(q.pending, row)
	}
	return nil
}

func (q *fakeQuery) Fetch() (bool, error) {
	if len(q.pending) == 0 {
		return false, nil
	}
	row := q.pending[0]
	q.pending = q.pending[1:]
	*q.binds[1] = row[0]
	*q.binds[2] = row[1]
	return true, nil
}

func (q *fakeQuery) Close() error {
	q.conn.queryClose = true
	return nil
}

// blockingConn holds Connect open until release is closed.
type blockingConn struct {
	*fakeConn
	entered chan struct{}
	release chan struct{}
}

func newBlockingConn(rows map[int][2]int64) *blockingConn {
	return &blockingConn{
		fakeConn: &fakeConn{rows: rows},
		entered:  make(chan struct{}),
		release:  make(chan struct{}),
	}
}

func (c *blockingConn) Connect(ctx context.Context) error {
	close(c.entered)
	<-c.release
	return c.fakeConn.Connect(ctx)
}

// registryWith returns a registry where only the given engines are enabled,
// all served by conn.
func registryWith(conn *fakeConn, engines ...dbconn.Engine) *dbconn.Registry {
	r := dbconn.NewRegistry()
	for _, engine := range engines {
		r.Register(engine, func(dbconn.Settings) dbconn.Conn { return conn })
	}
	return r
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sams2.conf")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func newTestStore(t *testing.T, path string, registry *dbconn.Registry, logger *zap.Logger) *Store {
	t.Helper()

	if logger == nil {
		logger = zaptest.NewLogger(t)
	}
	return New(WithPath(path), WithRegistry(registry), WithLogger(logger))
}
