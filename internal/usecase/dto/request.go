package dto

// ListListingsRequest - параметры поиска объявлений
type ListListingsRequest struct {
	// Campus defaults to "keele" when empty.
	Campus string `query:"campus"`
	// MaxMinutes is clamped to [10, 60]; 0 means the default of 25.
	MaxMinutes int `query:"max_minutes" validate:"gte=0,lte=600"`
	// MaxRent of 0 disables the rent filter.
	MaxRent        int     `query:"max_rent" validate:"gte=0"`
	MinSafety      float64 `query:"min_safety" validate:"gte=0,lte=5"`
	MinReliability float64 `query:"min_reliability" validate:"gte=0,lte=5"`
}
