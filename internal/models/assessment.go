package models

import "go.mongodb.org/mongo-driver/v2/bson"

// Assessment is a caller-defined document. The only field the server relies
// on is user.email, which keys the one stored assessment per user.
type Assessment map[string]any

// UserEmail returns the value at user.email, or "" when it is absent or not
// a string.
func (a Assessment) UserEmail() string {
	user, ok := a["user"].(map[string]any)
	if !ok {
		decoded, ok := a["user"].(bson.M)
		if !ok {
			return ""
		}
		user = decoded
	}
	email, _ := user["email"].(string)
	return email
}
