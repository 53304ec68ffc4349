package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/campus-housing-service/internal/pkg/utils"
	"github.com/campus-housing-service/internal/pkg/validator"
	"github.com/campus-housing-service/internal/usecase"
	"github.com/campus-housing-service/internal/usecase/dto"
)

// ListingHandler - обработчик для запросов объявлений
type ListingHandler struct {
	listingUC *usecase.ListingUseCase
	logger    *zap.Logger
}

// NewListingHandler - создание нового ListingHandler
func NewListingHandler(listingUC *usecase.ListingUseCase, logger *zap.Logger) *ListingHandler {
	return &ListingHandler{
		listingUC: listingUC,
		logger:    logger,
	}
}

// ListListings возвращает объявления, обогащенные travel данными, с
// фильтрацией по кампусу, времени в пути, аренде и рейтингам
func (h *ListingHandler) ListListings(c *fiber.Ctx) error {
	var req dto.ListListingsRequest
	req.Campus = c.Query("campus")
	req.MaxMinutes = c.QueryInt("max_minutes")
	req.MaxRent = c.QueryInt("max_rent")
	req.MinSafety = c.QueryFloat("min_safety")
	req.MinReliability = c.QueryFloat("min_reliability")

	// Валидация
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.listingUC.ListListings(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// GetListing возвращает одно обогащенное объявление по ID
func (h *ListingHandler) GetListing(c *fiber.Ctx) error {
	id := c.Params("id")

	result, err := h.listingUC.GetListing(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// GetTravelData возвращает сырую travel запись объявления (минуты до
// каждого кампуса, transit labels, геометрия маршрута, ближайшая остановка)
func (h *ListingHandler) GetTravelData(c *fiber.Ctx) error {
	id := c.Params("id")

	result, err := h.listingUC.GetTravelData(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// GetCampuses возвращает настроенный набор кампусов
func (h *ListingHandler) GetCampuses(c *fiber.Ctx) error {
	campuses := h.listingUC.Campuses()

	return utils.SendSuccess(c, dto.CampusesResponse{Campuses: campuses}, &utils.Meta{
		Total: len(campuses),
	})
}
