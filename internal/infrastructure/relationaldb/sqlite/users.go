package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ersonp/jackut/internal/domain/entities"
)

// SaveUsers replaces every stored user and profile with users.
func (r *Repository) SaveUsers(ctx context.Context, users []*entities.User) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		// Profile rows cascade.
		if _, err := tx.ExecContext(ctx, `DELETE FROM users`); err != nil {
			return fmt.Errorf("clearing users: %w", err)
		}

		for i, u := range users {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO users (login, name, password, created_at, position) VALUES (?, ?, ?, ?, ?)`,
				u.Login, u.Name, u.Password, u.CreatedAt, i,
			)
			if err != nil {
				return fmt.Errorf("saving user %s: %w", u.Login, err)
			}
			if u.Profile == nil {
				continue
			}
			if err := saveProfile(ctx, tx, u.Login, u.Profile); err != nil {
				return fmt.Errorf("saving profile of %s: %w", u.Login, err)
			}
		}
		return nil
	})
}

func saveProfile(ctx context.Context, tx *sql.Tx, login string, p *entities.Profile) error {
	for key, value := range p.Attributes {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO profile_attributes (login, key, value) VALUES (?, ?, ?)`,
			login, key, value,
		)
		if err != nil {
			return fmt.Errorf("saving attribute %s: %w", key, err)
		}
	}

	for _, rel := range p.Relationships(login) {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO user_relations (login, type, target, position) VALUES (?, ?, ?, ?)`,
			rel.Source, string(rel.Type), rel.Target, rel.Position,
		)
		if err != nil {
			return fmt.Errorf("saving %s relation: %w", rel.Type, err)
		}
	}

	roles := []struct {
		role string
		set  entities.Set
	}{
		{roleMember, p.MemberOf},
		{roleOwner, p.OwnerOf},
	}
	for _, r := range roles {
		for i, community := range r.set {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO memberships (login, community, role, position) VALUES (?, ?, ?, ?)`,
				login, community, r.role, i,
			)
			if err != nil {
				return fmt.Errorf("saving membership: %w", err)
			}
		}
	}

	for i, n := range p.Notes {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO notes (recipient, position, id, sender, text, system, sent_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			login, i, n.ID, n.Sender, n.Text, n.System, n.SentAt,
		)
		if err != nil {
			return fmt.Errorf("saving note: %w", err)
		}
	}

	for i, b := range p.Broadcasts {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO broadcasts (recipient, position, id, sender, community, text, sent_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			login, i, b.ID, b.Sender, b.Community, b.Text, b.SentAt,
		)
		if err != nil {
			return fmt.Errorf("saving broadcast: %w", err)
		}
	}
	return nil
}

// LoadUsers reads every user with its profile, in registration order.
func (r *Repository) LoadUsers(ctx context.Context) ([]*entities.User, error) {
	var users []*entities.User
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		var err error
		users, err = loadUsers(ctx, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

func loadUsers(ctx context.Context, tx *sql.Tx) ([]*entities.User, error) {
	rows, err := tx.QueryContext(ctx,
		`SELECT login, name, password, created_at FROM users ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying users: %w", err)
	}

	users := make([]*entities.User, 0, 16)
	byLogin := make(map[string]*entities.User)
	for rows.Next() {
		u := &entities.User{Profile: entities.NewProfile()}
		if err := rows.Scan(&u.Login, &u.Name, &u.Password, &u.CreatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning user: %w", err)
		}
		users = append(users, u)
		byLogin[u.Login] = u
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating users: %w", err)
	}
	rows.Close()

	loaders := []func(context.Context, *sql.Tx, map[string]*entities.User) error{
		loadAttributes,
		loadRelations,
		loadMemberships,
		loadNotes,
		loadBroadcasts,
	}
	for _, load := range loaders {
		if err := load(ctx, tx, byLogin); err != nil {
			return nil, err
		}
	}
	return users, nil
}

func loadAttributes(ctx context.Context, tx *sql.Tx, byLogin map[string]*entities.User) error {
	rows, err := tx.QueryContext(ctx, `SELECT login, key, value FROM profile_attributes`)
	if err != nil {
		return fmt.Errorf("querying attributes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var login, key, value string
		if err := rows.Scan(&login, &key, &value); err != nil {
			return fmt.Errorf("scanning attribute: %w", err)
		}
		if u, ok := byLogin[login]; ok {
			u.Profile.SetAttribute(key, value)
		}
	}
	return rows.Err()
}

func loadRelations(ctx context.Context, tx *sql.Tx, byLogin map[string]*entities.User) error {
	rows, err := tx.QueryContext(ctx,
		`SELECT login, type, target, position FROM user_relations ORDER BY login, type, position`)
	if err != nil {
		return fmt.Errorf("querying relations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rel entities.Relationship
		var relType string
		if err := rows.Scan(&rel.Source, &relType, &rel.Target, &rel.Position); err != nil {
			return fmt.Errorf("scanning relation: %w", err)
		}
		rel.Type = entities.RelationType(relType)
		u, ok := byLogin[rel.Source]
		if !ok {
			continue
		}
		if !u.Profile.Link(rel) {
			return fmt.Errorf("unknown relation type %q for %s", relType, rel.Source)
		}
	}
	return rows.Err()
}

func loadMemberships(ctx context.Context, tx *sql.Tx, byLogin map[string]*entities.User) error {
	rows, err := tx.QueryContext(ctx,
		`SELECT login, community, role FROM memberships ORDER BY login, role, position`)
	if err != nil {
		return fmt.Errorf("querying memberships: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var login, community, role string
		if err := rows.Scan(&login, &community, &role); err != nil {
			return fmt.Errorf("scanning membership: %w", err)
		}
		u, ok := byLogin[login]
		if !ok {
			continue
		}
		switch role {
		case roleMember:
			u.Profile.MemberOf.Add(community)
		case roleOwner:
			u.Profile.OwnerOf.Add(community)
		default:
			return fmt.Errorf("unknown membership role %q", role)
		}
	}
	return rows.Err()
}

func loadNotes(ctx context.Context, tx *sql.Tx, byLogin map[string]*entities.User) error {
	rows, err := tx.QueryContext(ctx,
		`SELECT recipient, id, sender, text, system, sent_at FROM notes ORDER BY recipient, position`)
	if err != nil {
		return fmt.Errorf("querying notes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var n entities.Note
		if err := rows.Scan(&n.Recipient, &n.ID, &n.Sender, &n.Text, &n.System, &n.SentAt); err != nil {
			return fmt.Errorf("scanning note: %w", err)
		}
		if u, ok := byLogin[n.Recipient]; ok {
			u.Profile.PushNote(n)
		}
	}
	return rows.Err()
}

func loadBroadcasts(ctx context.Context, tx *sql.Tx, byLogin map[string]*entities.User) error {
	rows, err := tx.QueryContext(ctx,
		`SELECT recipient, id, sender, community, text, sent_at FROM broadcasts ORDER BY recipient, position`)
	if err != nil {
		return fmt.Errorf("querying broadcasts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var recipient string
		var b entities.Broadcast
		if err := rows.Scan(&recipient, &b.ID, &b.Sender, &b.Community, &b.Text, &b.SentAt); err != nil {
			return fmt.Errorf("scanning broadcast: %w", err)
		}
		if u, ok := byLogin[recipient]; ok {
			u.Profile.PushBroadcast(b)
		}
	}
	return rows.Err()
}
