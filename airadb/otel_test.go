package airadb

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// stubQuerier answers GetRoster and the transaction calls only
type stubQuerier struct {
	Querier

	rollbackErr error
}

func (s *stubQuerier) GetRoster(ctx context.Context) ([]GetRosterRow, error) {
	return []GetRosterRow{{RaID: 1, Name: "Alice"}}, nil
}

func (s *stubQuerier) Begin(ctx context.Context) (QuerierTx, error) { return s, nil }
func (s *stubQuerier) Commit(ctx context.Context) error             { return nil }
func (s *stubQuerier) Rollback(ctx context.Context) error           { return s.rollbackErr }

func recordSpans(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()

	rec := tracetest.NewSpanRecorder()
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec)))
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	return rec
}

func spanNames(rec *tracetest.SpanRecorder) []string {
	var names []string
	for _, s := range rec.Ended() {
		names = append(names, s.Name())
	}
	return names
}

func TestWrappedQuerier(t *testing.T) {
	rec := recordSpans(t)
	ctx := context.Background()

	db := NewWrappedQuerier(&stubQuerier{rollbackErr: errors.New("connection lost")})

	rows, err := db.GetRoster(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	tx, err := db.Begin(ctx)
	require.NoError(t, err)
	assert.IsType(t, &WrappedQuerier{}, tx)

	require.NoError(t, tx.Commit(ctx))
	assert.Error(t, tx.Rollback(ctx))

	assert.Equal(t, []string{
		"QuerierTx.GetRoster",
		"QuerierTx.Begin",
		"QuerierTx.Commit",
		"QuerierTx.Rollback",
	}, spanNames(rec))

	spans := rec.Ended()
	assert.Equal(t, codes.Unset, spans[2].Status().Code)
	assert.Equal(t, codes.Error, spans[3].Status().Code)
	assert.Equal(t, "connection lost", spans[3].Status().Description)
}
