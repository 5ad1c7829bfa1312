package models

import (
	"net/url"
	"strconv"
)

// PageRequest holds the resolved query parameters for a list request.
// CreatedFrom, Limit, Offset and Sort are always set; the remaining filters
// are optional and empty means "not supplied".
type PageRequest struct {
	CreatedFrom  string // epoch seconds
	CreatedTo    string
	OrderStatus  string
	Mode         string
	ServiceIDs   string
	CreationType string
	User         string
	Provider     string
	IPAddress    string
	Link         string
	Limit        int
	Offset       int
	Sort         string
}

// Values serializes the request into upstream query parameters. Only
// supplied filters are included; an unset filter is omitted entirely, never
// sent as an empty string. Offset is excluded so callers can position the
// page themselves (the upstream fetch and the pagination links disagree on
// which offset to use).
func (r PageRequest) Values() url.Values {
	v := url.Values{}
	v.Set("created_from", r.CreatedFrom)
	v.Set("limit", strconv.Itoa(r.Limit))
	v.Set("sort", r.Sort)

	optional := map[string]string{
		"created_to":    r.CreatedTo,
		"order_status":  r.OrderStatus,
		"mode":          r.Mode,
		"service_ids":   r.ServiceIDs,
		"creation_type": r.CreationType,
		"user":          r.User,
		"provider":      r.Provider,
		"ip_address":    r.IPAddress,
		"link":          r.Link,
	}
	for key, val := range optional {
		if val != "" {
			v.Set(key, val)
		}
	}
	return v
}

// PageData is the data portion of a list response.
type PageData struct {
	Count int             `json:"count"`
	List  []EnrichedOrder `json:"list"`
}

// Pagination carries the computed page links. NextPageHref is always
// populated; PrevPageHref is empty when there is no previous page.
type Pagination struct {
	PrevPageHref string `json:"prev_page_href"`
	NextPageHref string `json:"next_page_href"`
	Offset       int    `json:"offset"`
	Limit        int    `json:"limit"`
}

// PageResponse is the public envelope for a list request.
type PageResponse struct {
	Data       PageData   `json:"data"`
	Pagination Pagination `json:"pagination"`
}
