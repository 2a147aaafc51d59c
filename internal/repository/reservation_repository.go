package repository

import (
	"context"
	"database/sql"

	"github.com/bartosz-starzec/Hotel-app-backend/internal/model"
)

// ReservationRepo provides CRUD operations on the reservations table.
// Reservations reference rooms and users by id without foreign keys, so
// deleting either side leaves the reservation row untouched.
type ReservationRepo struct{ DB *sql.DB }

func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{DB: db} }

const reservationCols = "id, room_id, user_id, name, surname, street, city, postal_code, start_date, end_date, days"

// List returns every reservation ordered by ascending id.
func (r *ReservationRepo) List(ctx context.Context) ([]model.Reservation, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+reservationCols+" FROM reservations ORDER BY id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReservations(rows)
}

// ListByUser returns all reservations made by the given user id.
func (r *ReservationRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Reservation, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+reservationCols+" FROM reservations WHERE user_id=?", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReservations(rows)
}

// Create inserts a reservation and returns its generated id.
func (r *ReservationRepo) Create(ctx context.Context, res *model.Reservation) (uint64, error) {
	out, err := r.DB.ExecContext(ctx,
		"INSERT INTO reservations (room_id, user_id, name, surname, street, city, postal_code, start_date, end_date, days) VALUES (?,?,?,?,?,?,?,?,?,?)",
		res.RoomID, res.UserID, res.Name, res.Surname, res.Street, res.City,
		res.PostalCode, res.StartDate, res.EndDate, res.Days)
	if err != nil {
		return 0, err
	}
	id, err := out.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// Update overwrites all mutable columns of a reservation.
func (r *ReservationRepo) Update(ctx context.Context, res *model.Reservation) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE reservations SET room_id=?, user_id=?, name=?, surname=?, street=?, city=?, postal_code=?, start_date=?, end_date=?, days=? WHERE id=?",
		res.RoomID, res.UserID, res.Name, res.Surname, res.Street, res.City,
		res.PostalCode, res.StartDate, res.EndDate, res.Days, res.ID)
	return err
}

// Delete removes a reservation by id.
func (r *ReservationRepo) Delete(ctx context.Context, id uint64) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM reservations WHERE id=?", id)
	return err
}

func scanReservations(rows *sql.Rows) ([]model.Reservation, error) {
	out := []model.Reservation{}
	for rows.Next() {
		var rv model.Reservation
		if err := rows.Scan(&rv.ID, &rv.RoomID, &rv.UserID, &rv.Name, &rv.Surname,
			&rv.Street, &rv.City, &rv.PostalCode, &rv.StartDate, &rv.EndDate, &rv.Days); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}
