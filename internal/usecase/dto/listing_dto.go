package dto

import "github.com/campus-housing-service/internal/domain"

// ListListingsResponse - результат поиска объявлений
type ListListingsResponse struct {
	Listings []*domain.EnrichedListing `json:"listings"`
	Campus   string                    `json:"campus"`
	Total    int                       `json:"total"`
}

// CampusesResponse - список кампусов
type CampusesResponse struct {
	Campuses []domain.Campus `json:"campuses"`
}
