package todo

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context) (ListOutput, error)
	Detail(ctx context.Context, id int64) (DetailOutput, error)
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	Update(ctx context.Context, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, id int64) error
}
