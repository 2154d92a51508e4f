package models

import "encoding/json"

// StatValue tolerates the upstream sending either a string or a number.
type StatValue string

func (v *StatValue) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = StatValue(s)
		return nil
	}
	*v = StatValue(data)
	return nil
}

type StatCard struct {
	Title    string    `json:"title"`
	Value    StatValue `json:"value"`
	Subtitle string    `json:"subtitle"`
	Icon     string    `json:"icon"`
	Variant  string    `json:"variant"`
}

type RevenueChartData struct {
	Month    string  `json:"month"`
	Revenue  float64 `json:"revenue"`
	Bookings int     `json:"bookings"`
}

type BookingTrendData struct {
	Month   string `json:"month"`
	Tickets int    `json:"tickets"`
	Artists int    `json:"artists"`
}
