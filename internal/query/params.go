package query

import (
	"net/url"
	"strconv"
	"time"

	"github.com/smmdash/order-query-service/internal/models"
)

const (
	// DefaultLimit is applied when the caller sends no limit or an
	// unparseable one.
	DefaultLimit = 100

	// DefaultSort matches the provider API default.
	DefaultSort = "date-desc"

	// DefaultCreatedFromAge is how far back the list reaches when the
	// caller sends no created_from.
	DefaultCreatedFromAge = 90 * 24 * time.Hour
)

// ResolvePageRequest turns a raw query string into a validated PageRequest.
// Every field has a safe default or is optional, so resolution never fails:
// malformed numbers fall back to their defaults rather than erroring.
//
// created_from is epoch seconds. The provider API also accepts ISO dates but
// the two conventions are not interchangeable; this service uses epoch
// seconds everywhere.
func ResolvePageRequest(q url.Values) models.PageRequest {
	createdFrom := q.Get("created_from")
	if createdFrom == "" {
		createdFrom = strconv.FormatInt(time.Now().Add(-DefaultCreatedFromAge).Unix(), 10)
	}

	return models.PageRequest{
		CreatedFrom:  createdFrom,
		CreatedTo:    q.Get("created_to"),
		OrderStatus:  q.Get("order_status"),
		Mode:         q.Get("mode"),
		ServiceIDs:   q.Get("service_ids"),
		CreationType: q.Get("creation_type"),
		User:         q.Get("user"),
		Provider:     q.Get("provider"),
		IPAddress:    q.Get("ip_address"),
		Link:         q.Get("link"),
		Limit:        intOrDefault(q.Get("limit"), DefaultLimit),
		Offset:       intOrDefault(q.Get("offset"), 0),
		Sort:         stringOrDefault(q.Get("sort"), DefaultSort),
	}
}

func intOrDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return def
	}
	if n == 0 && def > 0 {
		// limit must stay positive
		return def
	}
	return n
}

func stringOrDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
