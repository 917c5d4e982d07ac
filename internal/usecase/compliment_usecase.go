package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"flyingpot/internal/domain/entity"
)

// CreateComplimentGroupInput defines one promotion batch to issue.
type CreateComplimentGroupInput struct {
	Title     string
	Amount    float64
	StartDate string
	StartTime string
	EndTime   string
	// Count is how many codes the group is created with.
	Count int
}

// ComplimentsOutput bundles both sides of a user's promotions.
type ComplimentsOutput struct {
	Groups   []entity.ComplimentGroup
	Received []entity.Compliment
}

// ComplimentUsecase defines the interface for promotion code distribution.
type ComplimentUsecase interface {
	// CreateGroup issues a batch of codes under one group id.
	CreateGroup(ctx context.Context, vendorID primitive.ObjectID, input CreateComplimentGroupInput) (*entity.ComplimentGroup, error)

	// SendCompliments hands one unsent code from the group to each
	// follower, marking the vendor's copy sent. Runs out of codes with a
	// user-facing error.
	SendCompliments(ctx context.Context, vendorID primitive.ObjectID, groupID string, followers []string) error

	// DeleteGroup removes a group and its remaining codes.
	DeleteGroup(ctx context.Context, vendorID primitive.ObjectID, groupID string) error

	// ListCompliments returns the user's issued groups and received codes.
	ListCompliments(ctx context.Context, userID primitive.ObjectID) (*ComplimentsOutput, error)

	// ListKitchenCompliments returns received codes flagged for the
	// kitchen view.
	ListKitchenCompliments(ctx context.Context, userID primitive.ObjectID) ([]entity.Compliment, error)

	// ComplimentQR renders one received code as a PNG.
	ComplimentQR(ctx context.Context, userID primitive.ObjectID, codeID string) ([]byte, error)
}
