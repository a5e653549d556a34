package models

// User represents a registered account
type User struct {
	ID           string `json:"_id" bson:"_id"`
	Username     string `json:"username" bson:"username"`
	PasswordHash string `json:"-" bson:"password"` // Never serialize password
}
