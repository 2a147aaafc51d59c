package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/bartosz-starzec/Hotel-app-backend/internal/model"
)

// RoomRepo provides CRUD operations on the rooms table. The image column
// stores a serialized JSON value; it is passed through as json.RawMessage so
// clients get back exactly the structure they stored.
type RoomRepo struct{ DB *sql.DB }

func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{DB: db} }

const roomCols = "id, name, description, equipment, image, size, price"

// List returns every room ordered by ascending id.
func (r *RoomRepo) List(ctx context.Context) ([]model.Room, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+roomCols+" FROM rooms ORDER BY id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRooms(rows)
}

// GetByID returns the room with the given id as a zero-or-one element slice.
// The route contract serializes this result as a JSON array, so an absent id
// yields an empty list rather than an error.
func (r *RoomRepo) GetByID(ctx context.Context, id uint64) ([]model.Room, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+roomCols+" FROM rooms WHERE id=?", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRooms(rows)
}

// Create inserts a room and returns its generated id.
func (r *RoomRepo) Create(ctx context.Context, room *model.Room) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO rooms (name, description, equipment, image, size, price) VALUES (?,?,?,?,?,?)",
		room.Name, room.Description, room.Equipment, string(room.Image), room.Size, room.Price)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// Update overwrites all mutable columns of a room.
func (r *RoomRepo) Update(ctx context.Context, room *model.Room) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE rooms SET name=?, description=?, equipment=?, image=?, size=?, price=? WHERE id=?",
		room.Name, room.Description, room.Equipment, string(room.Image), room.Size, room.Price, room.ID)
	return err
}

// Delete removes a room by id. Deleting an absent id is not an error.
func (r *RoomRepo) Delete(ctx context.Context, id uint64) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM rooms WHERE id=?", id)
	return err
}

func scanRooms(rows *sql.Rows) ([]model.Room, error) {
	out := []model.Room{}
	for rows.Next() {
		var (
			rm  model.Room
			img []byte
		)
		if err := rows.Scan(&rm.ID, &rm.Name, &rm.Description, &rm.Equipment,
			&img, &rm.Size, &rm.Price); err != nil {
			return nil, err
		}
		rm.Image = json.RawMessage(img)
		out = append(out, rm)
	}
	return out, rows.Err()
}
