package enrich

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/smmdash/order-query-service/internal/models"
	"github.com/smmdash/order-query-service/pkg/logger"
)

// fakeFetcher serves detail records from a map and tracks concurrency.
type fakeFetcher struct {
	mu      sync.Mutex
	details map[int64]*models.OrderDetail
	failIDs map[int64]bool

	inFlight    int
	maxInFlight int
	calls       int
}

func (f *fakeFetcher) GetOrder(ctx context.Context, id int64) (*models.OrderDetail, error) {
	f.mu.Lock()
	f.calls++
	f.inFlight++
	if f.inFlight > f.maxInFlight {
		f.maxInFlight = f.inFlight
	}
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.inFlight--
		f.mu.Unlock()
	}()

	if f.failIDs[id] {
		return nil, fmt.Errorf("detail fetch blew up for order %d", id)
	}
	detail, ok := f.details[id]
	if !ok {
		return nil, fmt.Errorf("no such order %d", id)
	}
	return detail, nil
}

func completedOrder(id int64) models.OrderSummary {
	return models.OrderSummary{
		ID:         id,
		ServiceID:  1,
		Status:     "Completed",
		Created:    "2024-01-01T00:00:00Z",
		LastUpdate: "2024-01-01T00:05:30Z",
	}
}

func detailFor(order models.OrderSummary) *models.OrderDetail {
	return &models.OrderDetail{OrderSummary: order}
}

func TestEnrich_CompletedOrdersUseDetailTimestamps(t *testing.T) {
	summary := completedOrder(1)
	// summary carries stale timestamps, detail is authoritative
	summary.LastUpdate = "2024-01-01T00:00:01Z"

	fetcher := &fakeFetcher{
		details: map[int64]*models.OrderDetail{
			1: {OrderSummary: completedOrder(1)},
		},
	}
	e := New(fetcher, 5, logger.New("error"))

	got := e.Enrich(context.Background(), []models.OrderSummary{summary})

	if len(got) != 1 {
		t.Fatalf("expected 1 order, got %d", len(got))
	}
	if got[0].Duration != "5 Minutes 30 Seconds" {
		t.Errorf("expected duration from detail record, got %q", got[0].Duration)
	}
}

func TestEnrich_NonCompletedSkipsDetailFetch(t *testing.T) {
	orders := []models.OrderSummary{
		{ID: 1, Status: "in_progress", Created: "2024-01-01T00:00:00Z", LastUpdate: "2024-01-01T00:02:00Z"},
		{ID: 2, Status: "pending"},
	}

	fetcher := &fakeFetcher{details: map[int64]*models.OrderDetail{}}
	e := New(fetcher, 5, logger.New("error"))

	got := e.Enrich(context.Background(), orders)

	if fetcher.calls != 0 {
		t.Errorf("expected no detail fetches for non-completed orders, got %d", fetcher.calls)
	}
	if got[0].Duration != "2 Minutes 0 Seconds" {
		t.Errorf("expected duration from summary timestamps, got %q", got[0].Duration)
	}
	if got[1].Duration != Sentinel {
		t.Errorf("expected sentinel for missing timestamps, got %q", got[1].Duration)
	}
}

func TestEnrich_PartialFailureDegradesOneOrder(t *testing.T) {
	var orders []models.OrderSummary
	details := make(map[int64]*models.OrderDetail)
	for i := int64(1); i <= 10; i++ {
		order := completedOrder(i)
		orders = append(orders, order)
		details[i] = detailFor(order)
	}

	fetcher := &fakeFetcher{
		details: details,
		failIDs: map[int64]bool{7: true},
	}
	e := New(fetcher, 5, logger.New("error"))

	got := e.Enrich(context.Background(), orders)

	if len(got) != 10 {
		t.Fatalf("one failing detail fetch must not drop orders: expected 10, got %d", len(got))
	}
	for i, order := range got {
		if order.ID != orders[i].ID {
			t.Fatalf("relative order not preserved at index %d", i)
		}
		if order.ID == 7 {
			if order.Duration != Sentinel {
				t.Errorf("failing order should pass through with sentinel, got %q", order.Duration)
			}
			continue
		}
		if order.Duration != "5 Minutes 30 Seconds" {
			t.Errorf("order %d: expected enrichment to survive sibling failure, got %q", order.ID, order.Duration)
		}
	}
}

func TestEnrich_RespectsConcurrencyBound(t *testing.T) {
	const bound = 3

	var orders []models.OrderSummary
	details := make(map[int64]*models.OrderDetail)
	for i := int64(1); i <= 20; i++ {
		order := completedOrder(i)
		orders = append(orders, order)
		details[i] = detailFor(order)
	}

	fetcher := &fakeFetcher{details: details}
	e := New(fetcher, bound, logger.New("error"))

	e.Enrich(context.Background(), orders)

	if fetcher.calls != 20 {
		t.Errorf("expected 20 detail fetches, got %d", fetcher.calls)
	}
	if fetcher.maxInFlight > bound {
		t.Errorf("concurrency bound violated: saw %d simultaneous fetches, bound is %d", fetcher.maxInFlight, bound)
	}
}

func TestEnrich_Idempotent(t *testing.T) {
	orders := []models.OrderSummary{completedOrder(1), completedOrder(2)}
	fetcher := &fakeFetcher{
		details: map[int64]*models.OrderDetail{
			1: detailFor(orders[0]),
			2: detailFor(orders[1]),
		},
	}
	e := New(fetcher, 5, logger.New("error"))

	first := e.Enrich(context.Background(), orders)
	second := e.Enrich(context.Background(), orders)

	if len(first) != len(second) {
		t.Fatalf("lengths differ between runs: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("index %d differs between identical runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}
