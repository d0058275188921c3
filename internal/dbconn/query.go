package dbconn

import (
	"context"
	"database/sql"
	"fmt"
)

type queryFunc func(ctx context.Context, stmt string) (*sql.Rows, error)

// rowsQuery implements Query on top of database/sql rows. Every backend
// shares it; they differ only in how the statement is executed.
type rowsQuery struct {
	run   queryFunc
	binds []*int64
	rows  *sql.Rows
}

func newRowsQuery(run queryFunc) *rowsQuery {
	return &rowsQuery{run: run}
}

func (q *rowsQuery) BindCol(col int, dst *int64) error {
	if col < 1 || dst == nil {
		return fmt.Errorf("%w: column %d", ErrInvalidColumn, col)
	}
	for len(q.binds) < col {
		q.binds = append(q.binds, nil)
	}
	q.binds[col-1] = dst
	return nil
}

func (q *rowsQuery) SendQueryDirect(ctx context.Context, stmt string) error {
	if q.run == nil {
		return ErrNotConnected
	}
	for i, dst := range q.binds {
		if dst == nil {
			return fmt.Errorf("%w: column %d is not bound", ErrInvalidColumn, i+1)
		}
	}
	if err := q.closeRows(); err != nil {
		return err
	}

	rows, err := q.run(ctx, stmt)
	if err != nil {
		return fmt.Errorf("send query: %w", err)
	}
	q.rows = rows
	return nil
}

func (q *rowsQuery) Fetch() (bool, error) {
	if q.rows == nil {
		return false, ErrNotConnected
	}
	if !q.rows.Next() {
		if err := q.rows.Err(); err != nil {
			return false, fmt.Errorf("fetch row: %w", err)
		}
		return false, nil
	}

	dest := make([]any, len(q.binds))
	for i, dst := range q.binds {
		dest[i] = dst
	}
	if err := q.rows.Scan(dest...); err != nil {
		return false, fmt.Errorf("scan row: %w", err)
	}
	return true, nil
}

func (q *rowsQuery) Close() error {
	return q.closeRows()
}

func (q *rowsQuery) closeRows() error {
	if q.rows == nil {
		return nil
	}
	err := q.rows.Close()
	q.rows = nil
	return err
}
