package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bartosz-starzec/Hotel-app-backend/internal/model"
	"github.com/bartosz-starzec/Hotel-app-backend/internal/queue"
	"github.com/bartosz-starzec/Hotel-app-backend/internal/repository"
	queue_publisher "github.com/bartosz-starzec/Hotel-app-backend/internal/service"
	"github.com/bartosz-starzec/Hotel-app-backend/internal/validate"
)

// ReservationHandler serves the /reservations CRUD endpoints.
type ReservationHandler struct {
	Reservations *repository.ReservationRepo
	// PublishEvents controls whether a reservation.created event is emitted
	// after a successful insert. Publishing is best-effort and never affects
	// the HTTP response.
	PublishEvents bool
}

func NewReservationHandler(r *repository.ReservationRepo, publishEvents bool) *ReservationHandler {
	return &ReservationHandler{Reservations: r, PublishEvents: publishEvents}
}

// createReservationReq covers POST /reservations/new. UserID is optional:
// guests book without an account and are stored with user id 0.
type createReservationReq struct {
	RoomID     *uint64 `json:"roomId" validate:"required"`
	UserID     uint64  `json:"userId"`
	Name       string  `json:"name" validate:"required,min=1"`
	Surname    string  `json:"surname" validate:"required,min=1"`
	Street     string  `json:"street" validate:"required,min=1"`
	City       string  `json:"city" validate:"required,min=1"`
	PostalCode string  `json:"postalCode" validate:"required,min=1"`
	StartDate  string  `json:"startDate" validate:"required,min=1"`
	EndDate    string  `json:"endDate" validate:"required,min=1"`
	Days       int     `json:"days"`
}

// updateReservationReq is the create payload plus the target id; the update
// route carries no path parameter.
type updateReservationReq struct {
	ID uint64 `json:"id" validate:"required"`
	createReservationReq
}

// List handles GET /reservations.
func (h *ReservationHandler) List(c echo.Context) error {
	ctx, cancel := dbCtx(c)
	defer cancel()

	items, err := h.Reservations.List(ctx)
	if err != nil {
		return storeFailed(c)
	}
	return c.JSON(http.StatusOK, items)
}

// ListByUser handles GET /reservations/:userId. Like the room lookup, an
// unknown user id yields 200 with an empty array.
func (h *ReservationHandler) ListByUser(c echo.Context) error {
	userID, ok := pathID(c, "userId")
	if !ok {
		return badParam(c, "userId")
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	items, err := h.Reservations.ListByUser(ctx, userID)
	if err != nil {
		return storeFailed(c)
	}
	return c.JSON(http.StatusOK, items)
}

// Create handles POST /reservations/new.
func (h *ReservationHandler) Create(c echo.Context) error {
	var req createReservationReq
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	if errs := validate.Struct(req); errs != nil {
		return invalid(c, errs)
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	res := &model.Reservation{
		RoomID:     *req.RoomID,
		UserID:     req.UserID, // 0 for guest bookings
		Name:       req.Name,
		Surname:    req.Surname,
		Street:     req.Street,
		City:       req.City,
		PostalCode: req.PostalCode,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Days:       req.Days,
	}
	id, err := h.Reservations.Create(ctx, res)
	if err != nil {
		return storeFailed(c)
	}

	if h.PublishEvents {
		ev := queue.ReservationCreatedEvent{
			ReservationID: id,
			RoomID:        res.RoomID,
			UserID:        res.UserID,
			Name:          res.Name,
			Surname:       res.Surname,
			City:          res.City,
			StartDate:     res.StartDate,
			EndDate:       res.EndDate,
			Days:          res.Days,
			CreatedAt:     time.Now().UTC().Format(time.RFC3339),
		}
		go func() {
			pctx, pcancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer pcancel()
			_ = queue_publisher.PublishReservationCreated(pctx, ev)
		}()
	}

	return c.String(http.StatusCreated, fmt.Sprintf("Reservation added with ID: %d", id))
}

// Update handles PUT /reservations/update.
func (h *ReservationHandler) Update(c echo.Context) error {
	var req updateReservationReq
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	if errs := validate.Struct(req); errs != nil {
		return invalid(c, errs)
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	err := h.Reservations.Update(ctx, &model.Reservation{
		ID:         req.ID,
		RoomID:     *req.RoomID,
		UserID:     req.UserID,
		Name:       req.Name,
		Surname:    req.Surname,
		Street:     req.Street,
		City:       req.City,
		PostalCode: req.PostalCode,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Days:       req.Days,
	})
	if err != nil {
		return storeFailed(c)
	}
	return c.String(http.StatusOK, fmt.Sprintf("Reservation modified with ID: %d", req.ID))
}

// Delete handles DELETE /reservations/:id/delete.
func (h *ReservationHandler) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badParam(c, "id")
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	if err := h.Reservations.Delete(ctx, id); err != nil {
		return storeFailed(c)
	}
	return c.String(http.StatusOK, fmt.Sprintf("Reservation deleted with ID: %d", id))
}
