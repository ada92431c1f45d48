package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository interface defines the contract for show data access
type Repository interface {
	Create(ctx context.Context, show *Show) error
	GetByID(ctx context.Context, id uuid.UUID) (*Show, error)
	List(ctx context.Context, limit, offset int) ([]Show, error)
}

// repository implements the Repository interface
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new show repository instance
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, show *Show) error {
	return r.db.WithContext(ctx).Create(show).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Show, error) {
	var show Show
	if err := r.db.WithContext(ctx).First(&show, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &show, nil
}

func (r *repository) List(ctx context.Context, limit, offset int) ([]Show, error) {
	var shows []Show
	err := r.db.WithContext(ctx).
		Order("start_time ASC").
		Limit(limit).
		Offset(offset).
		Find(&shows).Error
	if err != nil {
		return nil, err
	}
	return shows, nil
}
