package enrich

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/smmdash/order-query-service/internal/models"
)

// DetailFetcher fetches a single order's detail record.
type DetailFetcher interface {
	GetOrder(ctx context.Context, id int64) (*models.OrderDetail, error)
}

// AnnotatedOrder is an order summary with its derived duration attached.
// Duration is Sentinel when it could not be computed.
type AnnotatedOrder struct {
	models.OrderSummary
	Duration string
}

// Enricher attaches derived durations to a fetched order list. Completed
// orders get their duration from an authoritative detail fetch; for all
// other orders the summary's own timestamps are used, avoiding a detail
// call per in-progress order.
type Enricher struct {
	fetcher     DetailFetcher
	concurrency int
	log         *slog.Logger
}

// New creates an enricher with the given per-batch concurrency bound.
func New(fetcher DetailFetcher, concurrency int, log *slog.Logger) *Enricher {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Enricher{
		fetcher:     fetcher,
		concurrency: concurrency,
		log:         log,
	}
}

// Enrich computes a duration for every order, preserving input order.
// Detail fetches run in batches of at most the configured concurrency;
// batches are strictly sequential, bounding simultaneous upstream
// connections. A failed detail fetch degrades that one order to Sentinel
// and never fails the batch or the request.
func (e *Enricher) Enrich(ctx context.Context, orders []models.OrderSummary) []AnnotatedOrder {
	annotated := make([]AnnotatedOrder, len(orders))

	var needDetail []int
	for i, order := range orders {
		annotated[i] = AnnotatedOrder{OrderSummary: order}
		if IsCompleted(order.Status) {
			needDetail = append(needDetail, i)
		} else {
			annotated[i].Duration = ElapsedBetween(order.Created, order.LastUpdate)
		}
	}

	for start := 0; start < len(needDetail); start += e.concurrency {
		end := start + e.concurrency
		if end > len(needDetail) {
			end = len(needDetail)
		}

		var g errgroup.Group
		for _, idx := range needDetail[start:end] {
			idx := idx
			g.Go(func() error {
				annotated[idx].Duration = e.fetchDuration(ctx, orders[idx])
				return nil
			})
		}
		// workers never return errors, Wait only synchronizes the batch
		_ = g.Wait()
	}

	return annotated
}

func (e *Enricher) fetchDuration(ctx context.Context, order models.OrderSummary) string {
	detail, err := e.fetcher.GetOrder(ctx, order.ID)
	if err != nil {
		e.log.Warn("detail fetch failed, order passed through unenriched",
			"order_id", order.ID,
			"error", err,
		)
		return Sentinel
	}
	return ElapsedBetween(detail.Created, detail.LastUpdate)
}

// IsCompleted reports whether a status string marks a completed order.
// Upstream casing varies, so the comparison is case-insensitive.
func IsCompleted(status string) bool {
	return strings.EqualFold(status, "completed")
}
