package handler

import (
	"errors"
	"strconv"

	"kindred/internal/delivery/http/dto"
	"kindred/internal/delivery/http/middleware"
	"kindred/internal/pkg/response"
	"kindred/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type DiscoveryHandler struct {
	uc usecase.DiscoveryUsecase
}

func NewDiscoveryHandler(uc usecase.DiscoveryUsecase) *DiscoveryHandler {
	return &DiscoveryHandler{uc: uc}
}

func (h *DiscoveryHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/discovery")
	grp.Get("/", h.Feed)
	grp.Post("/prewarm", h.Prewarm)
}

func (h *DiscoveryHandler) Feed(c fiber.Ctx) error {
	viewerID, ok := c.Locals(middleware.CtxProfileIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	limit, err := parseQueryIntStrict(c, "limit", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid limit", nil, err)
	}
	offset, err := parseQueryIntStrict(c, "offset", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid offset", nil, err)
	}
	minScore, err := parseQueryIntStrict(c, "min_score", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid min_score", nil, err)
	}

	items, err := h.uc.Feed(c.Context(), viewerID, usecase.DiscoveryParams{
		Limit:    limit,
		Offset:   offset,
		MinScore: minScore,
	})
	if err != nil {
		return mapDiscoveryError(err)
	}

	out := dto.FeedResponse{Items: make([]dto.FeedItemResponse, 0, len(items))}
	for _, it := range items {
		out.Items = append(out.Items, dto.FeedItemResponse{
			ProfileID: it.ProfileID,
			Age:       it.Age,
			City:      it.City,
			State:     it.State,
			Score:     it.Score,
		})
	}
	out.Count = len(out.Items)

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *DiscoveryHandler) Prewarm(c fiber.Ctx) error {
	viewerID, ok := c.Locals(middleware.CtxProfileIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	limit, err := parseQueryIntStrict(c, "limit", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid limit", nil, err)
	}

	computed, err := h.uc.Prewarm(c.Context(), viewerID, limit)
	if err != nil {
		return mapDiscoveryError(err)
	}

	return response.Success(c, fiber.StatusAccepted, response.MessageOK, dto.PrewarmResponse{Computed: computed})
}

func mapDiscoveryError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
	case errors.Is(err, usecase.ErrIncompleteProfile):
		return middleware.NewAppError(fiber.StatusBadRequest, "Profile incomplete", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	return strconv.Atoi(s)
}
