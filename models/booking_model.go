package models

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	BookingKindArtist = "artist_booking"
	BookingKindTicket = "event_ticket"
)

// BookingSummary is the flattened list-view row returned by the bookings
// collection endpoint.
type BookingSummary struct {
	ID            string  `json:"id"`
	CustomerName  string  `json:"customerName"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	EventName     string  `json:"eventName"`
	ArtistName    string  `json:"artistName"`
	Type          string  `json:"type"`
	Service       string  `json:"service"`
	Quantity      string  `json:"quantity"`
	TotalAmount   float64 `json:"totalAmount"`
	Advance       float64 `json:"advance"`
	BookingDate   string  `json:"bookingDate"`
	EventDate     string  `json:"eventDate"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"paymentStatus"`
	BookingType   string  `json:"bookingType"`
}

type BookedArtist struct {
	ID           string        `json:"_id"`
	User         PrincipalUser `json:"userId"`
	ProfileImage string        `json:"profileImage"`
}

type BookedService struct {
	ID       string  `json:"_id"`
	Category string  `json:"category"`
	Unit     string  `json:"unit"`
	Advance  float64 `json:"advance"`
}

type ArtistBookingDetails struct {
	ID            string        `json:"_id"`
	Artist        BookedArtist  `json:"artistId"`
	Service       BookedService `json:"serviceId"`
	Source        string        `json:"source"`
	StartAt       time.Time     `json:"startAt"`
	EndAt         time.Time     `json:"endAt"`
	TotalPrice    float64       `json:"totalPrice"`
	Status        string        `json:"status"`
	PaymentStatus string        `json:"paymentStatus"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
	Type          string        `json:"type"`
}

type TicketEventPlanner struct {
	ID           string        `json:"_id"`
	User         PrincipalUser `json:"userId"`
	Organization string        `json:"organization"`
	LogoURL      string        `json:"logoUrl"`
}

type TicketEvent struct {
	ID      string             `json:"_id"`
	Planner TicketEventPlanner `json:"plannerProfileId"`
	Title   string             `json:"title"`
	Venue   string             `json:"venue"`
	StartAt time.Time          `json:"startAt"`
}

type TicketTypeRef struct {
	ID    string  `json:"_id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
}

type QRPayload struct {
	TicketID  string `json:"ticketId"`
	EventID   string `json:"eventId"`
	BuyerName string `json:"buyerName"`
	Quantity  int    `json:"quantity"`
	Timestamp int64  `json:"timestamp"`
}

type EventTicketDetails struct {
	ID             string        `json:"_id"`
	TicketType     TicketTypeRef `json:"ticketTypeId"`
	Event          TicketEvent   `json:"eventId"`
	Buyer          PrincipalUser `json:"userId"`
	BuyerName      string        `json:"buyerName"`
	BuyerPhone     string        `json:"buyerPhone"`
	Persons        int           `json:"persons"`
	ScannedPersons int           `json:"scannedPersons"`
	IsValid        bool          `json:"isValide"`
	IssuedAt       time.Time     `json:"issuedAt"`
	Scanned        bool          `json:"scanned"`
	ScannedAt      *time.Time    `json:"scannedAt"`
	QRPayload      QRPayload     `json:"qrPayload"`
	QRDataURL      string        `json:"qrDataUrl"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
	Type           string        `json:"type"`
}

// BookingDetails is the tagged union returned by the booking detail endpoint,
// discriminated by the upstream "type" field.
type BookingDetails struct {
	Kind          string
	ArtistBooking *ArtistBookingDetails
	EventTicket   *EventTicketDetails
}

func (b *BookingDetails) UnmarshalJSON(data []byte) error {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	switch probe.Type {
	case BookingKindArtist:
		var details ArtistBookingDetails
		if err := json.Unmarshal(data, &details); err != nil {
			return err
		}
		b.Kind = BookingKindArtist
		b.ArtistBooking = &details
		return nil
	case BookingKindTicket:
		var details EventTicketDetails
		if err := json.Unmarshal(data, &details); err != nil {
			return err
		}
		b.Kind = BookingKindTicket
		b.EventTicket = &details
		return nil
	default:
		return fmt.Errorf("unknown booking type %q", probe.Type)
	}
}

func (b BookingDetails) MarshalJSON() ([]byte, error) {
	switch b.Kind {
	case BookingKindArtist:
		return json.Marshal(b.ArtistBooking)
	case BookingKindTicket:
		return json.Marshal(b.EventTicket)
	default:
		return nil, fmt.Errorf("unknown booking type %q", b.Kind)
	}
}
