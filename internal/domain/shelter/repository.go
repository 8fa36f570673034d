package shelter

import "context"

// Repository defines the interface for shelter persistence.
// Lookups return (nil, nil) when no row matches.
type Repository interface {
	Create(ctx context.Context, shelter *Shelter) error
	GetByID(ctx context.Context, id uint) (*Shelter, error)
	GetByName(ctx context.Context, name string) (*Shelter, error)
	List(ctx context.Context) ([]*Shelter, error)
	Update(ctx context.Context, shelter *Shelter) error
	Delete(ctx context.Context, id uint) error
	ExistsByName(ctx context.Context, name string) (bool, error)
}
