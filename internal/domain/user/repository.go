package user

import "context"

type Repository interface {
	// Get by public user_id
	GetByUserID(ctx context.Context, userID string) (*User, error)
}
