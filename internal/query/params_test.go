package query

import (
	"net/url"
	"strconv"
	"testing"
	"time"
)

func TestResolvePageRequest_Defaults(t *testing.T) {
	req := ResolvePageRequest(url.Values{})

	if req.Limit != DefaultLimit {
		t.Errorf("expected default limit %d, got %d", DefaultLimit, req.Limit)
	}
	if req.Offset != 0 {
		t.Errorf("expected default offset 0, got %d", req.Offset)
	}
	if req.Sort != DefaultSort {
		t.Errorf("expected default sort %q, got %q", DefaultSort, req.Sort)
	}

	epoch, err := strconv.ParseInt(req.CreatedFrom, 10, 64)
	if err != nil {
		t.Fatalf("default created_from is not epoch seconds: %q", req.CreatedFrom)
	}
	want := time.Now().Add(-DefaultCreatedFromAge).Unix()
	if epoch < want-60 || epoch > want+60 {
		t.Errorf("default created_from %d not within a minute of %d", epoch, want)
	}
}

func TestResolvePageRequest_ParseFallbacks(t *testing.T) {
	tests := []struct {
		name       string
		params     url.Values
		wantLimit  int
		wantOffset int
	}{
		{
			name:       "valid values",
			params:     url.Values{"limit": {"25"}, "offset": {"50"}},
			wantLimit:  25,
			wantOffset: 50,
		},
		{
			name:       "garbage limit falls back",
			params:     url.Values{"limit": {"abc"}},
			wantLimit:  DefaultLimit,
			wantOffset: 0,
		},
		{
			name:       "negative offset falls back",
			params:     url.Values{"offset": {"-5"}},
			wantLimit:  DefaultLimit,
			wantOffset: 0,
		},
		{
			name:       "zero limit falls back",
			params:     url.Values{"limit": {"0"}},
			wantLimit:  DefaultLimit,
			wantOffset: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := ResolvePageRequest(tt.params)
			if req.Limit != tt.wantLimit {
				t.Errorf("limit: expected %d, got %d", tt.wantLimit, req.Limit)
			}
			if req.Offset != tt.wantOffset {
				t.Errorf("offset: expected %d, got %d", tt.wantOffset, req.Offset)
			}
		})
	}
}

func TestResolvePageRequest_OptionalFiltersOmitted(t *testing.T) {
	req := ResolvePageRequest(url.Values{
		"user":        {"alice"},
		"service_ids": {"12,34"},
	})

	v := req.Values()

	if got := v.Get("user"); got != "alice" {
		t.Errorf("expected user=alice forwarded, got %q", got)
	}
	if got := v.Get("service_ids"); got != "12,34" {
		t.Errorf("expected service_ids forwarded, got %q", got)
	}

	// absent filters must be omitted entirely, never sent as empty strings
	for _, key := range []string{"created_to", "order_status", "mode", "creation_type", "provider", "ip_address", "link"} {
		if _, present := v[key]; present {
			t.Errorf("unsupplied filter %q must not be serialized", key)
		}
	}
}
