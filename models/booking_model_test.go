package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingDetailsDecodesArtistBooking(t *testing.T) {
	payload := `{
		"_id": "B1",
		"type": "artist_booking",
		"artistId": {"_id": "A1", "userId": {"_id": "U1", "displayName": "Asha Rao"}},
		"serviceId": {"_id": "S1", "category": "DJ", "unit": "event", "advance": 2000},
		"totalPrice": 15000,
		"status": "confirmed",
		"paymentStatus": "advance_paid"
	}`

	var details BookingDetails
	require.NoError(t, json.Unmarshal([]byte(payload), &details))

	assert.Equal(t, BookingKindArtist, details.Kind)
	require.NotNil(t, details.ArtistBooking)
	assert.Nil(t, details.EventTicket)
	assert.Equal(t, "Asha Rao", details.ArtistBooking.Artist.User.DisplayName)
	assert.Equal(t, float64(15000), details.ArtistBooking.TotalPrice)
}

func TestBookingDetailsDecodesEventTicket(t *testing.T) {
	payload := `{
		"_id": "T1",
		"type": "event_ticket",
		"ticketTypeId": {"_id": "TT1", "title": "General", "price": 499},
		"eventId": {"_id": "E1", "title": "Sunburn Goa", "venue": "Vagator"},
		"buyerName": "Ravi Menon",
		"persons": 3,
		"scannedPersons": 1,
		"scanned": true
	}`

	var details BookingDetails
	require.NoError(t, json.Unmarshal([]byte(payload), &details))

	assert.Equal(t, BookingKindTicket, details.Kind)
	require.NotNil(t, details.EventTicket)
	assert.Nil(t, details.ArtistBooking)
	assert.Equal(t, "Sunburn Goa", details.EventTicket.Event.Title)
	assert.Equal(t, 3, details.EventTicket.Persons)
}

func TestBookingDetailsRejectsUnknownKind(t *testing.T) {
	var details BookingDetails
	err := json.Unmarshal([]byte(`{"_id": "X1", "type": "merch_order"}`), &details)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "merch_order")
}

func TestLinkedTransactionDecodesBothForms(t *testing.T) {
	var bare LinkedTransaction
	require.NoError(t, json.Unmarshal([]byte(`"TX42"`), &bare))
	assert.Equal(t, "TX42", bare.ID)
	assert.Nil(t, bare.Transaction)

	var populated LinkedTransaction
	require.NoError(t, json.Unmarshal([]byte(`{"_id": "TX42", "type": "debit", "amount": 5000}`), &populated))
	assert.Equal(t, "TX42", populated.ID)
	require.NotNil(t, populated.Transaction)
	assert.Equal(t, float64(5000), populated.Transaction.Amount)

	var absent LinkedTransaction
	require.NoError(t, json.Unmarshal([]byte(`null`), &absent))
	assert.Empty(t, absent.ID)
}

func TestBankDetailsVariant(t *testing.T) {
	upi := BankDetails{UPIID: "asha@okhdfc"}
	assert.Equal(t, PayoutMethodUPI, upi.Method())
	assert.Equal(t, "asha@okhdfc", upi.Summary())

	account := BankDetails{AccountNumber: "50100234567890", BankName: "HDFC Bank", IFSCCode: "HDFC0001"}
	assert.Equal(t, PayoutMethodBankAccount, account.Method())
	assert.Equal(t, "HDFC Bank ****7890", account.Summary())

	assert.Equal(t, PayoutMethodUnknown, BankDetails{}.Method())
	assert.Equal(t, "Not provided", BankDetails{}.Summary())
}

func TestStatValueToleratesNumbers(t *testing.T) {
	var card StatCard
	require.NoError(t, json.Unmarshal([]byte(`{"title": "Total", "value": 128}`), &card))
	assert.Equal(t, StatValue("128"), card.Value)

	require.NoError(t, json.Unmarshal([]byte(`{"title": "Total", "value": "₹1,200"}`), &card))
	assert.Equal(t, StatValue("₹1,200"), card.Value)
}
