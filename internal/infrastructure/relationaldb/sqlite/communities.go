package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ersonp/jackut/internal/domain/entities"
)

// SaveCommunities replaces every stored community with communities.
func (r *Repository) SaveCommunities(ctx context.Context, communities []*entities.Community) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM communities`); err != nil {
			return fmt.Errorf("clearing communities: %w", err)
		}

		for i, c := range communities {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO communities (name, description, owner, created_at, position) VALUES (?, ?, ?, ?, ?)`,
				c.Name, c.Description, c.Owner, c.CreatedAt, i,
			)
			if err != nil {
				return fmt.Errorf("saving community %s: %w", c.Name, err)
			}
			for j, login := range c.Members {
				_, err := tx.ExecContext(ctx,
					`INSERT INTO community_members (community, login, position) VALUES (?, ?, ?)`,
					c.Name, login, j,
				)
				if err != nil {
					return fmt.Errorf("saving member %s of %s: %w", login, c.Name, err)
				}
			}
		}
		return nil
	})
}

// LoadCommunities reads every community with its members, in creation order.
func (r *Repository) LoadCommunities(ctx context.Context) ([]*entities.Community, error) {
	var communities []*entities.Community
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx,
			`SELECT name, description, owner, created_at FROM communities ORDER BY position`)
		if err != nil {
			return fmt.Errorf("querying communities: %w", err)
		}

		byName := make(map[string]*entities.Community)
		for rows.Next() {
			c := &entities.Community{}
			if err := rows.Scan(&c.Name, &c.Description, &c.Owner, &c.CreatedAt); err != nil {
				rows.Close()
				return fmt.Errorf("scanning community: %w", err)
			}
			communities = append(communities, c)
			byName[c.Name] = c
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return fmt.Errorf("iterating communities: %w", err)
		}
		rows.Close()

		members, err := tx.QueryContext(ctx,
			`SELECT community, login FROM community_members ORDER BY community, position`)
		if err != nil {
			return fmt.Errorf("querying community members: %w", err)
		}
		defer members.Close()

		for members.Next() {
			var name, login string
			if err := members.Scan(&name, &login); err != nil {
				return fmt.Errorf("scanning community member: %w", err)
			}
			if c, ok := byName[name]; ok {
				c.Members.Add(login)
			}
		}
		return members.Err()
	})
	if err != nil {
		return nil, err
	}
	return communities, nil
}
