package models

// Task is a single to-do item owned by exactly one user
type Task struct {
	ID      string `json:"_id" bson:"_id"`
	Title   string `json:"title" bson:"title"`
	OwnerID string `json:"ownerId" bson:"ownerId"`
}
