package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ersonp/jackut/internal/domain/entities"
)

// SaveSessions replaces the stored sessions with sessions.
func (r *Repository) SaveSessions(ctx context.Context, sessions []entities.Session) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM sessions`); err != nil {
			return fmt.Errorf("clearing sessions: %w", err)
		}
		for i, s := range sessions {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO sessions (id, login, opened_at, position) VALUES (?, ?, ?, ?)`,
				s.ID, s.Login, s.OpenedAt, i,
			)
			if err != nil {
				return fmt.Errorf("saving session %s: %w", s.ID, err)
			}
		}
		return nil
	})
}

// LoadSessions reads the stored sessions in opening order.
func (r *Repository) LoadSessions(ctx context.Context) ([]entities.Session, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, login, opened_at FROM sessions ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()

	sessions := make([]entities.Session, 0, 8)
	for rows.Next() {
		var s entities.Session
		if err := rows.Scan(&s.ID, &s.Login, &s.OpenedAt); err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}
