package service

import (
	"strconv"
	"strings"

	"github.com/smmdash/order-query-service/internal/enrich"
	"github.com/smmdash/order-query-service/internal/models"
	"github.com/smmdash/order-query-service/internal/query"
)

// compose filters, projects, and paginates the enriched list into the
// public envelope. Pure transformation, no failure modes.
func (s *OrderQueryService) compose(annotated []enrich.AnnotatedOrder, req models.PageRequest) *models.PageResponse {
	filtered := filterByServiceIDs(annotated, req.ServiceIDs)

	list := make([]models.EnrichedOrder, 0, len(filtered))
	for _, order := range filtered {
		list = append(list, project(order))
	}

	return &models.PageResponse{
		Data: models.PageData{
			Count: len(list),
			List:  list,
		},
		Pagination: query.PageLinks(s.opts.PublicBaseURL, req),
	}
}

// project maps an annotated order to the public shape. The duration field
// name follows the order's own status so an in-progress order is never
// labeled as completed.
func project(order enrich.AnnotatedOrder) models.EnrichedOrder {
	out := models.EnrichedOrder{
		OrderID:      order.ID,
		ServiceID:    order.ServiceID,
		ServiceName:  order.ServiceName,
		Status:       order.Status,
		Quantity:     order.Quantity,
		OrderCreated: order.Created,
		OrderUpdated: order.LastUpdate,
		Username:     order.User,
	}
	if enrich.IsCompleted(order.Status) {
		out.CompletedTime = order.Duration
	} else {
		out.AverageTime = order.Duration
	}
	return out
}

// filterByServiceIDs applies the local service filter. Some provider plans
// ignore service_ids on the list endpoint, so the filter is re-applied here
// against the fetched page. Relative order is preserved.
func filterByServiceIDs(orders []enrich.AnnotatedOrder, serviceIDs string) []enrich.AnnotatedOrder {
	if serviceIDs == "" {
		return orders
	}

	wanted := make(map[string]bool)
	for _, id := range strings.Split(serviceIDs, ",") {
		if id = strings.TrimSpace(id); id != "" {
			wanted[id] = true
		}
	}
	if len(wanted) == 0 {
		return orders
	}

	filtered := make([]enrich.AnnotatedOrder, 0, len(orders))
	for _, order := range orders {
		if wanted[strconv.FormatInt(order.ServiceID, 10)] {
			filtered = append(filtered, order)
		}
	}
	return filtered
}
