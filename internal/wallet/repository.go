package wallet

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound indicates the referenced wallet does not exist.
var ErrNotFound = errors.New("wallet not found")

// Repository persists wallet records.
type Repository interface {
	List(ctx context.Context) ([]Wallet, error)
	ListByUser(ctx context.Context, userID int) ([]Wallet, error)
	GetByID(ctx context.Context, id int) (Wallet, error)
	Create(ctx context.Context, w Wallet) (Wallet, error)
	// Update replaces the stored record, balance mapping included.
	Update(ctx context.Context, w Wallet) (Wallet, error)
	Delete(ctx context.Context, id int) error
}

// PostgresRepository stores wallets in PostgreSQL with the balance mapping
// held in a jsonb column.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a repository backed by PostgreSQL.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const walletColumns = `id, user_id, name, address, status, balance, created_at`

func scanWallet(row pgx.Row) (Wallet, error) {
	var w Wallet
	if err := row.Scan(&w.ID, &w.UserID, &w.Name, &w.Address, &w.Status, &w.Balance, &w.CreatedAt); err != nil {
		return Wallet{}, err
	}
	if w.Balance == nil {
		w.Balance = map[string]float64{}
	}
	return w, nil
}

// List returns every wallet ordered by id.
func (r *PostgresRepository) List(ctx context.Context) ([]Wallet, error) {
	rows, err := r.db.Query(ctx, `SELECT `+walletColumns+` FROM wallets ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectWallets(rows)
}

// ListByUser returns the wallets owned by a user ordered by id.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID int) ([]Wallet, error) {
	rows, err := r.db.Query(ctx, `SELECT `+walletColumns+` FROM wallets WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectWallets(rows)
}

// GetByID fetches one wallet.
func (r *PostgresRepository) GetByID(ctx context.Context, id int) (Wallet, error) {
	row := r.db.QueryRow(ctx, `SELECT `+walletColumns+` FROM wallets WHERE id = $1`, id)
	w, err := scanWallet(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Wallet{}, ErrNotFound
		}
		return Wallet{}, err
	}
	return w, nil
}

// Create inserts a wallet row and returns it with the generated id.
func (r *PostgresRepository) Create(ctx context.Context, w Wallet) (Wallet, error) {
	row := r.db.QueryRow(ctx, `INSERT INTO wallets (user_id, name, address, status, balance, created_at)
        VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		w.UserID, w.Name, w.Address, w.Status, w.Balance, w.CreatedAt.UTC())
	if err := row.Scan(&w.ID); err != nil {
		return Wallet{}, err
	}
	return w, nil
}

// Update replaces a wallet row in full.
func (r *PostgresRepository) Update(ctx context.Context, w Wallet) (Wallet, error) {
	tag, err := r.db.Exec(ctx, `UPDATE wallets
        SET user_id = $2, name = $3, address = $4, status = $5, balance = $6
        WHERE id = $1`,
		w.ID, w.UserID, w.Name, w.Address, w.Status, w.Balance)
	if err != nil {
		return Wallet{}, err
	}
	if tag.RowsAffected() == 0 {
		return Wallet{}, ErrNotFound
	}
	return w, nil
}

// Delete removes a wallet row.
func (r *PostgresRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM wallets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func collectWallets(rows pgx.Rows) ([]Wallet, error) {
	wallets := []Wallet{}
	for rows.Next() {
		w, err := scanWallet(rows)
		if err != nil {
			return nil, err
		}
		wallets = append(wallets, w)
	}
	return wallets, rows.Err()
}
