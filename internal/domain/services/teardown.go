package services

import (
	"github.com/ersonp/jackut/internal/domain/entities"
)

// TeardownReport summarizes what DeleteUser removed.
type TeardownReport struct {
	Login              string
	DeletedCommunities []string
	PurgedNotes        int
	ClosedSessions     int
}

// DeleteUser removes login and every trace of it from the graph: relation
// edges on both ends, community memberships, owned communities, notes it
// sent, its sessions and finally its registry entry.
func (s *RelationshipService) DeleteUser(login string) (TeardownReport, error) {
	target, err := s.users.FindByLogin(login)
	if err != nil {
		return TeardownReport{}, err
	}
	report := TeardownReport{Login: target.Login}
	p := target.Profile

	for _, other := range s.peers(p.Enemies) {
		other.Profile.Enemies.Remove(target.Login)
	}
	for _, other := range s.peers(p.Friends) {
		other.Profile.Friends.Remove(target.Login)
	}
	for _, idol := range s.peers(p.Idols) {
		idol.Profile.Fans.Remove(target.Login)
	}
	for _, fan := range s.peers(p.Fans) {
		fan.Profile.Idols.Remove(target.Login)
	}
	for _, other := range s.peers(p.Crushes) {
		other.Profile.Crushes.Remove(target.Login)
	}

	for _, name := range p.MemberOf.Values() {
		s.communities.Leave(target.Login, name)
	}
	deleted, err := s.communities.DeleteOwnedBy(target.Login)
	if err != nil {
		return report, err
	}
	report.DeletedCommunities = deleted

	// Edges held only on the other side of the relation.
	for _, other := range s.users.All() {
		if other == target {
			continue
		}
		report.PurgedNotes += other.Profile.RemoveNotesFrom(target.Login)
		other.Profile.PendingFriends.Remove(target.Login)
		other.Profile.Crushes.Remove(target.Login)
	}

	p.Clear()
	if s.sessions != nil {
		report.ClosedSessions = s.sessions.Forget(target.Login)
	}
	s.users.Remove(target)
	return report, nil
}

// peers resolves the logins of a relation set, skipping unknown ones.
func (s *RelationshipService) peers(logins entities.Set) []*entities.User {
	out := make([]*entities.User, 0, len(logins))
	for _, login := range logins {
		if u, err := s.users.FindByLogin(login); err == nil {
			out = append(out, u)
		}
	}
	return out
}
