package airadb

import (
	"context"
	"database/sql"
	"errors"
)

type QuerierTx interface {
	Querier

	Begin(ctx context.Context) (QuerierTx, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type Beginner interface {
	BeginTx(context.Context, *sql.TxOptions) (*sql.Tx, error)
}

var _ QuerierTx = (*Queries)(nil)

func (q *Queries) Begin(ctx context.Context) (QuerierTx, error) {
	b, ok := q.db.(Beginner)
	if !ok {
		return nil, errors.New("nested transactions are not supported")
	}
	tx, err := b.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &Queries{db: tx}, nil
}

func (q *Queries) Commit(ctx context.Context) error {
	tx, ok := q.db.(*sql.Tx)
	if !ok {
		// Commit called on Queries with the pool, so treat as transaction already committed
		return sql.ErrTxDone
	}
	return tx.Commit()
}

func (q *Queries) Rollback(ctx context.Context) error {
	tx, ok := q.db.(*sql.Tx)
	if !ok {
		return sql.ErrTxDone
	}
	return tx.Rollback()
}

type WrappedQuerier struct {
	QuerierTxWithTracing
}

// NewWrappedQuerier returns q with an OpenTelemetry span around every
// query. Transactions started from it are wrapped as well.
func NewWrappedQuerier(q QuerierTx) QuerierTx {
	return &WrappedQuerier{NewQuerierTxWithTracing(q, "")}
}

func (wq *WrappedQuerier) Begin(ctx context.Context) (QuerierTx, error) {
	q, err := wq.QuerierTxWithTracing.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return NewWrappedQuerier(q), nil
}
