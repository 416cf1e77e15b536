package entities

import "errors"

// Error kinds returned by the registries and the relationship engine.
// Callers match them with errors.Is.
var (
	ErrInvalidIdentifier    = errors.New("invalid login or name")
	ErrInvalidCredential    = errors.New("invalid password")
	ErrDuplicateAccount     = errors.New("an account with this name already exists")
	ErrUserNotFound         = errors.New("user not found")
	ErrCommunityNotFound    = errors.New("community not found")
	ErrDuplicateCommunity   = errors.New("a community with this name already exists")
	ErrSelfRelationship     = errors.New("a user cannot relate to itself")
	ErrEnemyBlocked         = errors.New("operation blocked: users are enemies")
	ErrAlreadyAdded         = errors.New("relationship already exists")
	ErrAlreadyFriends       = errors.New("users are already friends")
	ErrAlreadyMember        = errors.New("user is already a member of this community")
	ErrFriendRequestPending = errors.New("friend request already sent, waiting for acceptance")
	ErrNotFriends           = errors.New("users are not friends")
	ErrEmptyQueue           = errors.New("no messages to read")
	ErrInvalidAttribute     = errors.New("invalid attribute")
	ErrAttributeNotSet      = errors.New("attribute not set")
	ErrBadCredentials       = errors.New("invalid login or password")
)

var errorKinds = []struct {
	err  error
	kind string
}{
	{ErrInvalidIdentifier, "InvalidIdentifier"},
	{ErrInvalidCredential, "InvalidCredential"},
	{ErrDuplicateAccount, "DuplicateAccount"},
	{ErrUserNotFound, "UserNotFound"},
	{ErrCommunityNotFound, "CommunityNotFound"},
	{ErrDuplicateCommunity, "DuplicateCommunity"},
	{ErrSelfRelationship, "SelfRelationship"},
	{ErrEnemyBlocked, "EnemyBlocked"},
	{ErrAlreadyAdded, "AlreadyAdded"},
	{ErrAlreadyFriends, "AlreadyFriends"},
	{ErrAlreadyMember, "AlreadyMember"},
	{ErrFriendRequestPending, "FriendRequestPending"},
	{ErrNotFriends, "NotFriends"},
	{ErrEmptyQueue, "EmptyQueue"},
	{ErrInvalidAttribute, "InvalidAttribute"},
	{ErrAttributeNotSet, "AttributeNotSet"},
	{ErrBadCredentials, "BadCredentials"},
}

// KindOf returns the name of the error kind err belongs to, or "" when err
// is nil or not one of the domain errors.
func KindOf(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return ""
}

// ErrorKinds returns every known error kind name.
func ErrorKinds() []string {
	kinds := make([]string, len(errorKinds))
	for i, k := range errorKinds {
		kinds[i] = k.kind
	}
	return kinds
}
