package repository

import (
	"context"

	"github.com/campus-housing-service/internal/domain"
)

// ListingRepository определяет методы для чтения статических объявлений
type ListingRepository interface {
	// GetByID возвращает объявление по ID
	GetByID(ctx context.Context, id string) (*domain.Listing, error)

	// GetAll возвращает все объявления
	GetAll(ctx context.Context) ([]*domain.Listing, error)
}
