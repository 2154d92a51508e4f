package models

import "time"

type Event struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Venue         string  `json:"venue"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	Capacity      int     `json:"capacity"`
	TicketsSold   int     `json:"ticketsSold"`
	ArtistsBooked int     `json:"artistsBooked"`
	Status        string  `json:"status"`
	Image         string  `json:"image"`
	Price         float64 `json:"price"`
}

type TicketType struct {
	ID         string    `json:"_id"`
	EventID    string    `json:"eventId"`
	Title      string    `json:"title"`
	Price      float64   `json:"price"`
	Quantity   int       `json:"quantity"`
	Sold       int       `json:"sold"`
	SalesStart time.Time `json:"salesStart"`
	SalesEnd   time.Time `json:"salesEnd"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type EventDetails struct {
	ID          string       `json:"_id"`
	PlannerID   string       `json:"plannerProfileId"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Venue       string       `json:"venue"`
	Address     string       `json:"address"`
	City        string       `json:"city"`
	State       string       `json:"state"`
	Lat         float64      `json:"lat"`
	Lng         float64      `json:"lng"`
	StartAt     time.Time    `json:"startAt"`
	EndAt       time.Time    `json:"endAt"`
	Published   bool         `json:"published"`
	Banner      string       `json:"banner,omitempty"`
	TicketTypes []TicketType `json:"ticketTypes"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}
