package domain

import "time"

// Role is the access role of a user.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// JoinStatus is the approval state of a user's join request.
type JoinStatus string

const (
	JoinPending  JoinStatus = "pending"
	JoinApproved JoinStatus = "approved"
	JoinRejected JoinStatus = "rejected"
)

// JoinRequest is a user's association with a company. It is overwritten
// wholesale on each request: a user belongs to at most one company.
type JoinRequest struct {
	CompanyName string     `json:"companyName"`
	Status      JoinStatus `json:"status"`
}

// User represents an application user.
type User struct {
	UserID      string       `json:"userID"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Role        Role         `json:"role"`
	JoinRequest *JoinRequest `json:"joinRequest,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// OwnerKind classifies which document type owns an email address.
type OwnerKind string

const (
	OwnerUser    OwnerKind = "user"
	OwnerCompany OwnerKind = "company"
)
