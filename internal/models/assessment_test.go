package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestAssessment_UserEmail(t *testing.T) {
	tests := []struct {
		name string
		doc  Assessment
		want string
	}{
		{"present", Assessment{"user": map[string]any{"email": "a@x.com", "fullName": "A"}}, "a@x.com"},
		{"no user", Assessment{"score": 1.0}, ""},
		{"user not an object", Assessment{"user": "a@x.com"}, ""},
		{"email not a string", Assessment{"user": map[string]any{"email": 42.0}}, ""},
		{"empty email", Assessment{"user": map[string]any{"email": ""}}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.doc.UserEmail())
		})
	}
}

func TestAssessment_UserEmail_DecodedDocument(t *testing.T) {
	doc := Assessment{"user": bson.M{"email": "b@x.com"}}
	assert.Equal(t, "b@x.com", doc.UserEmail())
}
