package models

// FamilyMember is a single node of a member's family record.
type FamilyMember struct {
	ID               int    `json:"id"`
	UserID           int    `json:"user_id"`
	Name             string `json:"name"`
	Relation         string `json:"relation"`
	ParentID         *int   `json:"parent_id,omitempty"`
	Gender           string `json:"gender"`
	Age              *int   `json:"age,omitempty"`
	Profession       string `json:"profession,omitempty"`
	LinkedUserID     *int   `json:"linked_user_id,omitempty"`
	LinkedSabhasadID string `json:"linked_sabhasad_id,omitempty"`
}

// FamilyNode is a node of the family tree returned by /family/tree,
// with children nested recursively.
type FamilyNode struct {
	ID           int          `json:"id"`
	Name         string       `json:"name"`
	Relation     string       `json:"relation"`
	Gender       string       `json:"gender"`
	Age          *int         `json:"age,omitempty"`
	Profession   string       `json:"profession,omitempty"`
	LinkedUserID *int         `json:"linked_user_id,omitempty"`
	Children     []FamilyNode `json:"children"`
}
