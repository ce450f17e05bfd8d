package domain

import "time"

// SubjectType discriminates what a token was issued for.
type SubjectType string

const (
	SubjectTypeUser SubjectType = "user"
	SubjectTypeCall SubjectType = "call"
)

// Token represents issued authentication token metadata.
type Token struct {
	SubjectID string
	Subject   SubjectType
	ExpiresAt time.Time
	IssuedAt  time.Time
}
