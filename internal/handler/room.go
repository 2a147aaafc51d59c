package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bartosz-starzec/Hotel-app-backend/internal/model"
	"github.com/bartosz-starzec/Hotel-app-backend/internal/repository"
	"github.com/bartosz-starzec/Hotel-app-backend/internal/validate"
)

// RoomHandler serves the /rooms CRUD endpoints.
type RoomHandler struct {
	Rooms *repository.RoomRepo
}

func NewRoomHandler(r *repository.RoomRepo) *RoomHandler { return &RoomHandler{Rooms: r} }

// roomReq covers both create and update. Size and Price are pointers so the
// validator distinguishes "missing" from a legitimate zero; a non-numeric
// price fails JSON binding before any store call.
type roomReq struct {
	Name        string          `json:"name" validate:"required,min=1"`
	Description string          `json:"description" validate:"required,min=1"`
	Equipment   string          `json:"equipment" validate:"required,min=1"`
	Image       json.RawMessage `json:"image" validate:"required,min=1"`
	Size        *int            `json:"size" validate:"required"`
	Price       *float64        `json:"price" validate:"required"`
}

// List handles GET /rooms and returns all rooms ordered by ascending id.
func (h *RoomHandler) List(c echo.Context) error {
	ctx, cancel := dbCtx(c)
	defer cancel()

	rooms, err := h.Rooms.List(ctx)
	if err != nil {
		return storeFailed(c)
	}
	return c.JSON(http.StatusOK, rooms)
}

// GetByID handles GET /rooms/:id. The response is always a JSON array: one
// element when the id exists, empty when it does not. An absent id is not an
// error in this API.
func (h *RoomHandler) GetByID(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badParam(c, "id")
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	rooms, err := h.Rooms.GetByID(ctx, id)
	if err != nil {
		return storeFailed(c)
	}
	return c.JSON(http.StatusOK, rooms)
}

// Create handles POST /rooms/new and answers with the plain-text ack the
// frontend parses.
func (h *RoomHandler) Create(c echo.Context) error {
	var req roomReq
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	if errs := validate.Struct(req); errs != nil {
		return invalid(c, errs)
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	id, err := h.Rooms.Create(ctx, &model.Room{
		Name:        req.Name,
		Description: req.Description,
		Equipment:   req.Equipment,
		Image:       req.Image,
		Size:        *req.Size,
		Price:       *req.Price,
	})
	if err != nil {
		return storeFailed(c)
	}
	return c.String(http.StatusCreated, fmt.Sprintf("Room added with ID: %d", id))
}

// Update handles PUT /rooms/:id/update.
func (h *RoomHandler) Update(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badParam(c, "id")
	}
	var req roomReq
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	if errs := validate.Struct(req); errs != nil {
		return invalid(c, errs)
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	err := h.Rooms.Update(ctx, &model.Room{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Equipment:   req.Equipment,
		Image:       req.Image,
		Size:        *req.Size,
		Price:       *req.Price,
	})
	if err != nil {
		return storeFailed(c)
	}
	return c.String(http.StatusOK, fmt.Sprintf("Room modified with ID: %d", id))
}

// Delete handles DELETE /rooms/:id/delete.
func (h *RoomHandler) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badParam(c, "id")
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	if err := h.Rooms.Delete(ctx, id); err != nil {
		return storeFailed(c)
	}
	return c.String(http.StatusOK, fmt.Sprintf("Room deleted with ID: %d", id))
}
