package models

// Transaction is the flattened payment row for the transactions view:
// incoming rows are customer payments, outgoing rows are disbursements.
type Transaction struct {
	ID             string  `json:"id"`
	EventName      string  `json:"eventName"`
	ArtistName     string  `json:"artistName"`
	AdvancePayment float64 `json:"advancePayment"`
	TotalPayment   float64 `json:"totalPayment"`
	ReceivedAmount float64 `json:"receivedAmount"`
	PendingAmount  float64 `json:"pendingAmount"`
	Date           string  `json:"date"`
	Status         string  `json:"status"`
	Type           string  `json:"type"`
}
