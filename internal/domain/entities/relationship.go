package entities

// RelationType defines the kind of relationship one user holds toward another.
type RelationType string

const (
	RelationFriend  RelationType = "friend"
	RelationPending RelationType = "pending" // outgoing friend request
	RelationEnemy   RelationType = "enemy"
	RelationCrush   RelationType = "crush"
	RelationIdol    RelationType = "idol"
	RelationFan     RelationType = "fan"
)

// RelationTypes lists every relation type in storage order.
var RelationTypes = []RelationType{
	RelationFriend,
	RelationPending,
	RelationEnemy,
	RelationCrush,
	RelationIdol,
	RelationFan,
}

// Relationship is a single directed entry of a profile's relationship sets,
// flattened for storage. Symmetric relations are stored once per side.
type Relationship struct {
	Source   string       `json:"source"`
	Target   string       `json:"target"`
	Type     RelationType `json:"type"`
	Position int          `json:"position"`
}
