package models

// OrderSummary is a single entry from the upstream list endpoint.
// Schema matches the provider admin API v2.
type OrderSummary struct {
	ID          int64  `json:"id"`
	ServiceID   int64  `json:"service_id"`
	ServiceName string `json:"service_name"`
	Status      string `json:"status"`
	Quantity    int64  `json:"quantity"`
	Created     string `json:"created"`
	LastUpdate  string `json:"last_update"`
	User        string `json:"user"`
	Link        string `json:"link"`
}

// OrderDetail is the full record from the upstream detail endpoint.
// Its timestamps are the authoritative source for duration computation.
type OrderDetail struct {
	OrderSummary
	Provider  string `json:"provider,omitempty"`
	IPAddress string `json:"ip_address,omitempty"`
	Mode      string `json:"mode,omitempty"`
}

// EnrichedOrder is the public projection of an order. The derived duration
// field is named by the order's own status: completed orders carry
// completed_time, everything else carries average_time.
type EnrichedOrder struct {
	OrderID       int64  `json:"order_id"`
	ServiceID     int64  `json:"service_id"`
	ServiceName   string `json:"service_name"`
	Status        string `json:"status"`
	Quantity      int64  `json:"quantity"`
	CompletedTime string `json:"completed_time,omitempty"`
	AverageTime   string `json:"average_time,omitempty"`
	OrderCreated  string `json:"order_created"`
	OrderUpdated  string `json:"order_updated"`
	Username      string `json:"username"`
}

// OrderDetailView is the single-order lookup response body: the upstream
// detail record with the derived duration merged in.
type OrderDetailView struct {
	OrderDetail
	CompletedTime string `json:"completed_time,omitempty"`
	AverageTime   string `json:"average_time,omitempty"`
}
