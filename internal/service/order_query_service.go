package service

import (
	"context"
	"log/slog"

	"github.com/smmdash/order-query-service/internal/enrich"
	"github.com/smmdash/order-query-service/internal/models"
)

// UpstreamAPI is the slice of the provider client the pipeline needs.
type UpstreamAPI interface {
	ListOrders(ctx context.Context, req models.PageRequest) ([]models.OrderSummary, error)
	GetOrder(ctx context.Context, id int64) (*models.OrderDetail, error)
}

// Options consolidates the behavior differences between the old handler
// variants into one parameterized pipeline.
type Options struct {
	// PublicBaseURL is the origin pagination links are built against.
	PublicBaseURL string
	// EnrichDetails toggles the detail-fetch stage. When off, durations
	// are still derived from the summary timestamps already in hand.
	EnrichDetails bool
	// ForceCompleted makes order_status=completed the upstream default
	// when the caller supplied no status filter.
	ForceCompleted bool
}

// OrderQueryService runs the list pipeline: fetch, enrich, compose.
// It holds no per-request state; every invocation is independent.
type OrderQueryService struct {
	upstream UpstreamAPI
	enricher *enrich.Enricher
	opts     Options
	log      *slog.Logger
}

// NewOrderQueryService creates the query pipeline.
func NewOrderQueryService(upstream UpstreamAPI, enricher *enrich.Enricher, opts Options, log *slog.Logger) *OrderQueryService {
	return &OrderQueryService{
		upstream: upstream,
		enricher: enricher,
		opts:     opts,
		log:      log,
	}
}

// ListOrders fetches one upstream page, enriches it, and composes the
// public response. Strictly linear; a detail-fetch failure inside the
// enricher degrades that order only and never surfaces here.
func (s *OrderQueryService) ListOrders(ctx context.Context, req models.PageRequest) (*models.PageResponse, error) {
	if s.opts.ForceCompleted && req.OrderStatus == "" {
		req.OrderStatus = "completed"
	}

	orders, err := s.upstream.ListOrders(ctx, req)
	if err != nil {
		return nil, err
	}

	var annotated []enrich.AnnotatedOrder
	if s.opts.EnrichDetails {
		annotated = s.enricher.Enrich(ctx, orders)
	} else {
		annotated = summaryDurations(orders)
	}

	return s.compose(annotated, req), nil
}

// GetOrder fetches a single order's detail record and merges the derived
// duration into it.
func (s *OrderQueryService) GetOrder(ctx context.Context, id int64) (*models.OrderDetailView, error) {
	detail, err := s.upstream.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	view := &models.OrderDetailView{OrderDetail: *detail}
	duration := enrich.ElapsedBetween(detail.Created, detail.LastUpdate)
	if enrich.IsCompleted(detail.Status) {
		view.CompletedTime = duration
	} else {
		view.AverageTime = duration
	}
	return view, nil
}

// summaryDurations derives durations from the timestamps already present
// on the list entries, used when the detail stage is disabled.
func summaryDurations(orders []models.OrderSummary) []enrich.AnnotatedOrder {
	annotated := make([]enrich.AnnotatedOrder, len(orders))
	for i, order := range orders {
		annotated[i] = enrich.AnnotatedOrder{
			OrderSummary: order,
			Duration:     enrich.ElapsedBetween(order.Created, order.LastUpdate),
		}
	}
	return annotated
}
