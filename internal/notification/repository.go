package notification

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists notification records.
type Repository interface {
	List(ctx context.Context) ([]Notification, error)
	ListByUser(ctx context.Context, userID int) ([]Notification, error)
	Create(ctx context.Context, n Notification) (Notification, error)
}

// PostgresRepository stores notifications in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a repository backed by PostgreSQL.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const notificationColumns = `id, user_id, type, title, message, time, is_read, created_at`

// List returns every notification ordered by id.
func (r *PostgresRepository) List(ctx context.Context) ([]Notification, error) {
	rows, err := r.db.Query(ctx, `SELECT `+notificationColumns+` FROM notifications ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectNotifications(rows)
}

// ListByUser returns a user's notifications ordered by id.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID int) ([]Notification, error) {
	rows, err := r.db.Query(ctx, `SELECT `+notificationColumns+` FROM notifications WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectNotifications(rows)
}

// Create inserts a notification row and returns it with the generated id.
func (r *PostgresRepository) Create(ctx context.Context, n Notification) (Notification, error) {
	row := r.db.QueryRow(ctx, `INSERT INTO notifications (user_id, type, title, message, time, is_read, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		n.UserID, n.Type, n.Title, n.Message, n.Time, n.IsRead, n.CreatedAt.UTC())
	if err := row.Scan(&n.ID); err != nil {
		return Notification{}, err
	}
	return n, nil
}

func collectNotifications(rows pgx.Rows) ([]Notification, error) {
	notifications := []Notification{}
	for rows.Next() {
		var n Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Title, &n.Message, &n.Time, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}
