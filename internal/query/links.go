package query

import (
	"strconv"
	"strings"

	"github.com/smmdash/order-query-service/internal/models"
)

// ListPath is the public path pagination links point at.
const ListPath = "/api/orders"

// PageLinks computes prev/next hrefs for a resolved request. The next link
// always advances by one page regardless of whether more data exists
// upstream; the prev link is empty at offset 0. Links are absolute against
// the configured public base origin.
func PageLinks(baseURL string, req models.PageRequest) models.Pagination {
	p := models.Pagination{
		Offset: req.Offset,
		Limit:  req.Limit,
	}

	p.NextPageHref = pageHref(baseURL, req, req.Offset+req.Limit)

	if req.Offset > 0 {
		prev := req.Offset - req.Limit
		if prev < 0 {
			prev = 0
		}
		p.PrevPageHref = pageHref(baseURL, req, prev)
	}

	return p
}

func pageHref(baseURL string, req models.PageRequest, offset int) string {
	v := req.Values()
	v.Set("offset", strconv.Itoa(offset))
	return strings.TrimSuffix(baseURL, "/") + ListPath + "?" + v.Encode()
}
