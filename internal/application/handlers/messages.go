package handlers

import (
	"context"

	"github.com/ersonp/jackut/internal/domain/entities"
)

// SendNote sends a direct note from the session user to recipient.
func (f *Facade) SendNote(ctx context.Context, session, recipient, text string) error {
	return f.mutateAs(ctx, "send note", session, func(login string) error {
		_, err := f.net.Relationships.SendNote(login, recipient, text)
		return err
	})
}

// ReadNote dequeues the oldest note of the session user.
func (f *Facade) ReadNote(ctx context.Context, session string) (entities.Note, error) {
	var note entities.Note
	err := f.mutateAs(ctx, "read note", session, func(login string) error {
		var err error
		note, err = f.net.Relationships.ReadNote(login)
		return err
	})
	return note, err
}

// Broadcast sends text to every member of community on behalf of the session user.
func (f *Facade) Broadcast(ctx context.Context, session, community, text string) error {
	return f.mutateAs(ctx, "broadcast", session, func(login string) error {
		_, err := f.net.Communities.Broadcast(login, community, text)
		return err
	})
}

// ReadBroadcast dequeues the oldest community broadcast of the session user.
func (f *Facade) ReadBroadcast(ctx context.Context, session string) (entities.Broadcast, error) {
	var b entities.Broadcast
	err := f.mutateAs(ctx, "read broadcast", session, func(login string) error {
		var err error
		b, err = f.net.Communities.ReadBroadcast(login)
		return err
	})
	return b, err
}
