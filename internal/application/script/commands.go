package script

import (
	"context"
	"strconv"

	"github.com/ersonp/jackut/internal/application/handlers"
)

// command executes one step and returns its rendered result.
type command func(ctx context.Context, f *handlers.Facade, a args) (string, error)

func none(err error) (string, error) { return "", err }

func text(s string, err error) (string, error) { return s, err }

func boolean(ok bool, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return strconv.FormatBool(ok), nil
}

func list(items []string, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return FormatList(items), nil
}

// commands maps script command names to facade calls.
var commands = map[string]command{
	"createUser": func(ctx context.Context, f *handlers.Facade, a args) (string, error) {
		return none(f.CreateUser(ctx, a.get("login"), a.get("password"), a.get("name")))
	},
	"openSession": func(ctx context.Context, f *handlers.Facade, a args) (string, error) {
		return text(f.OpenSession(ctx, a.get("login"), a.get("password")))
	},
	"closeSession": func(ctx context.Context, f *handlers.Facade, a args) (string, error) {
		return none(f.CloseSession(ctx, a.get("session")))
	},
	"getAttribute": func(_ context.Context, f *handlers.Facade, a args) (string, error) {
		return text(f.GetAttribute(a.get("login"), a.get("attribute")))
	},
	"editProfile": func(ctx context.Context, f *handlers.Facade, a args) (string, error) {
		return none(f.EditProfile(ctx, a.get("session"), a.get("attribute"), a.get("value")))
	},

	"requestFriend": func(ctx context.Context, f *handlers.Facade, a args) (string, error) {
		return none(f.AddFriend(ctx, a.get("session"), a.get("friend")))
	},
	"removeFriend": func(ctx context.Context, f *handlers.Facade, a args) (string, error) {
		return none(f.RemoveFriend(ctx, a.get("session"), a.get("friend")))
	},
	"isFriend": func(_ context.Context, f *handlers.Facade, a args) (string, error) {
		return boolean(f.IsFriend(a.get("login"), a.get("friend")))
	},
	"listFriends": func(_ context.Context, f *handlers.Facade, a args) (string, error) {
		return list(f.Friends(a.get("login")))
	},
	"listPendingFriends": func(_ context.Context, f *handlers.Facade, a args) (string, error) {
		return list(f.PendingFriends(a.get("login")))
	},

	"sendNote": func(ctx context.Context, f *handlers.Facade, a args) (string, error) {
		return none(f.SendNote(ctx, a.get("session"), a.get("recipient"), a.get("note")))
	},
	"readNote": func(ctx context.Context, f *handlers.Facade, a args) (string, error) {
		n, err := f.ReadNote(ctx, a.get("session"))
		return n.Text, err
	},

	"createCommunity": func(ctx context.Context, f *handlers.Facade, a args) (string, error) {
		return none(f.CreateCommunity(ctx, a.get("session"), a.get("name"), a.get("description")))
	},
	"joinCommunity": func(ctx context.Context, f *handlers.Facade, a args) (string, error) {
		return none(f.JoinCommunity(ctx, a.get("session"), a.get("name")))
	},
	"describeCommunity": func(_ context.Context, f *handlers.Facade, a args) (string, error) {
		return text(f.DescribeCommunity(a.get("name")))
	},
	"communityOwner": func(_ context.Context, f *handlers.Facade, a args) (string, error) {
		return text(f.CommunityOwner(a.get("name")))
	},
	"communityMembers": func(_ context.Context, f *handlers.Facade, a args) (string, error) {
		return list(f.CommunityMembers(a.get("name")))
	},
	"listMemberships": func(_ context.Context, f *handlers.Facade, a args) (string, error) {
		return list(f.Memberships(a.get("login")))
	},
	"broadcast": func(ctx context.Context, f *handlers.Facade, a args) (string, error) {
		return none(f.Broadcast(ctx, a.get("session"), a.get("community"), a.get("message")))
	},
	"readBroadcast": func(ctx context.Context, f *handlers.Facade, a args) (string, error) {
		b, err := f.ReadBroadcast(ctx, a.get("session"))
		return b.Text, err
	},

	"addIdol": func(ctx context.Context, f *handlers.Facade, a args) (string, error) {
		return none(f.AddIdol(ctx, a.get("session"), a.get("idol")))
	},
	"isFan": func(_ context.Context, f *handlers.Facade, a args) (string, error) {
		return boolean(f.IsFan(a.get("login"), a.get("idol")))
	},
	"listFans": func(_ context.Context, f *handlers.Facade, a args) (string, error) {
		return list(f.Fans(a.get("login")))
	},
	"listIdols": func(_ context.Context, f *handlers.Facade, a args) (string, error) {
		return list(f.Idols(a.get("login")))
	},
	"addCrush": func(ctx context.Context, f *handlers.Facade, a args) (string, error) {
		return none(f.AddCrush(ctx, a.get("session"), a.get("crush")))
	},
	"isCrush": func(_ context.Context, f *handlers.Facade, a args) (string, error) {
		return boolean(f.IsCrush(a.get("session"), a.get("crush")))
	},
	"listCrushes": func(_ context.Context, f *handlers.Facade, a args) (string, error) {
		return list(f.Crushes(a.get("session")))
	},
	"addEnemy": func(ctx context.Context, f *handlers.Facade, a args) (string, error) {
		return none(f.AddEnemy(ctx, a.get("session"), a.get("enemy")))
	},
	"isEnemy": func(_ context.Context, f *handlers.Facade, a args) (string, error) {
		return boolean(f.IsEnemy(a.get("login"), a.get("enemy")))
	},
	"listEnemies": func(_ context.Context, f *handlers.Facade, a args) (string, error) {
		return list(f.Enemies(a.get("login")))
	},

	"deleteUser": func(ctx context.Context, f *handlers.Facade, a args) (string, error) {
		return none(f.DeleteUser(ctx, a.get("session")))
	},
	"resetAll": func(ctx context.Context, f *handlers.Facade, _ args) (string, error) {
		return none(f.ResetAll(ctx))
	},
}
