package repository

import (
	"context"
	"errors"

	"flyingpot/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrGroupNotFound is returned when a promotion group id matches nothing.
var ErrGroupNotFound = errors.New("compliment group not found")

// ErrCodeNotFound is returned when a code id matches nothing inside a group.
var ErrCodeNotFound = errors.New("compliment code not found")

// ComplimentRepository operates on the promotion structures embedded in user
// documents: the vendor's code groups and the flat copies followers receive.
type ComplimentRepository interface {
	// PushGroup appends a new code group to the vendor's document.
	PushGroup(ctx context.Context, vendorID primitive.ObjectID, group entity.ComplimentGroup) error

	// PullGroup removes the group with the given id.
	PullGroup(ctx context.Context, vendorID primitive.ObjectID, groupID string) error

	// MarkCodeSent flags one code inside a group as distributed.
	MarkCodeSent(ctx context.Context, vendorID primitive.ObjectID, groupID, codeID string) error

	// PushReceived appends a received promotion copy to a follower's document.
	PushReceived(ctx context.Context, userID primitive.ObjectID, compliment entity.Compliment) error
}
