package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// JoinRequest is the stored join-request sub-document. It is replaced
// wholesale on each request, never appended.
type JoinRequest struct {
	CompanyName string `bson:"companyName"`
	Status      string `bson:"status"`
}

// User is the stored form of a user in the User collection. Email
// carries a unique index.
type User struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	Name        string        `bson:"name"`
	Email       string        `bson:"email"`
	Role        string        `bson:"role"`
	JoinRequest *JoinRequest  `bson:"joinRequest,omitempty"`
	CreatedAt   time.Time     `bson:"createdAt"`
}
