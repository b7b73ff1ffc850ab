package handler

import (
	"errors"

	"kindred/internal/delivery/http/dto"
	"kindred/internal/delivery/http/middleware"
	"kindred/internal/pkg/response"
	"kindred/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type CompatibilityHandler struct {
	discovery usecase.DiscoveryUsecase
	compat    usecase.CompatUsecase
}

func NewCompatibilityHandler(discovery usecase.DiscoveryUsecase, compat usecase.CompatUsecase) *CompatibilityHandler {
	return &CompatibilityHandler{discovery: discovery, compat: compat}
}

func (h *CompatibilityHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/compatibility")
	grp.Get("/:profile_id", h.GetBreakdown)
	grp.Delete("/:profile_id", h.Invalidate)
}

// GetBreakdown returns the viewer's compatibility with one other profile,
// including the per-category contributions behind the total.
func (h *CompatibilityHandler) GetBreakdown(c fiber.Ctx) error {
	viewerID, ok := c.Locals(middleware.CtxProfileIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	otherID, err := uuid.Parse(c.Params("profile_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid profile id", nil, err)
	}

	bd, err := h.discovery.CompareWith(c.Context(), viewerID, otherID)
	if err != nil {
		return mapDiscoveryError(err)
	}

	out := dto.CompatibilityResponse{
		ProfileID: otherID,
		Score:     bd.Total,
		Breakdown: dto.BreakdownResponse{
			Goals:        bd.Goals,
			Lifestyle:    bd.Lifestyle,
			Location:     bd.Location,
			Demographics: bd.Demographics,
			Personality:  bd.Personality,
		},
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

// Invalidate drops every cached score involving the given profile. The
// account platform calls this whenever a profile or its preferences change.
func (h *CompatibilityHandler) Invalidate(c fiber.Ctx) error {
	if _, ok := c.Locals(middleware.CtxProfileIDKey).(uuid.UUID); !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	profileID, err := uuid.Parse(c.Params("profile_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid profile id", nil, err)
	}

	if err := h.compat.Invalidate(c.Context(), profileID); err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.InvalidateResponse{ProfileID: profileID})
}
