package model

import "encoding/json"

// Room represents a bookable hotel room as stored in the `rooms` table.
// Image holds a structured value (arbitrary JSON) that is serialized into a
// text column on write and handed back verbatim on read; json.RawMessage
// keeps the round trip lossless.
//
// Fields:
//
//	ID          – primary key identifier.
//	Name        – display name of the room.
//	Description – free-form description.
//	Equipment   – free-form equipment listing.
//	Image       – structured image descriptor (stored serialized).
//	Size        – room size in square meters.
//	Price       – price per night.
type Room struct {
	ID          uint64          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Equipment   string          `json:"equipment"`
	Image       json.RawMessage `json:"image"`
	Size        int             `json:"size"`
	Price       float64         `json:"price"`
}
