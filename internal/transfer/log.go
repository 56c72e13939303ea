package transfer

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Log is the append-only transaction store.
type Log interface {
	Append(ctx context.Context, rec Record) error
	ListRecent(ctx context.Context, limit int) ([]Record, error)
}

// PostgresLog stores transfer records in PostgreSQL.
type PostgresLog struct {
	db *pgxpool.Pool
}

// NewPostgresLog builds a transaction log backed by PostgreSQL.
func NewPostgresLog(db *pgxpool.Pool) *PostgresLog {
	return &PostgresLog{db: db}
}

// Append inserts a transfer record.
func (l *PostgresLog) Append(ctx context.Context, rec Record) error {
	_, err := l.db.Exec(ctx, `INSERT INTO transactions
        (transaction_id, from_address, to_address, amount, currency, status, network_type, balance_before, balance_after, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		rec.TransactionID, rec.FromAddress, rec.ToAddress, rec.Amount, rec.Currency,
		rec.Status, rec.NetworkType, rec.BalanceBefore, rec.BalanceAfter, rec.Timestamp.UTC())
	return err
}

// ListRecent returns the newest records first.
func (l *PostgresLog) ListRecent(ctx context.Context, limit int) ([]Record, error) {
	rows, err := l.db.Query(ctx, `SELECT transaction_id, from_address, to_address, amount, currency,
        status, network_type, balance_before, balance_after, created_at
        FROM transactions ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.TransactionID, &rec.FromAddress, &rec.ToAddress, &rec.Amount, &rec.Currency,
			&rec.Status, &rec.NetworkType, &rec.BalanceBefore, &rec.BalanceAfter, &rec.Timestamp); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

type memoryLog struct {
	mu      sync.RWMutex
	records []Record
}

// NewMemoryLog constructs an in-memory transaction log for tests and dev mode.
func NewMemoryLog() Log {
	return &memoryLog{}
}

func (l *memoryLog) Append(_ context.Context, rec Record) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, rec)
	return nil
}

func (l *memoryLog) ListRecent(_ context.Context, limit int) ([]Record, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := []Record{}
	for i := len(l.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, l.records[i])
	}
	return out, nil
}
