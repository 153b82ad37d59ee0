package prayertimes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestFetchByCity(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{
			"code": 200,
			"data": {
				"timings": {
					"Imsak": "04:20",
					"Fajr": "04:30",
					"Dhuhr": "12:05",
					"Asr": "15:25",
					"Maghrib": "18:10",
					"Isha": "19:20"
				}
			}
		}`))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	date := time.Date(2026, time.February, 20, 0, 0, 0, 0, time.UTC)
	timings, err := client.FetchByCity(context.Background(), date, "Jakarta", "Indonesia")
	if err != nil {
		t.Fatalf("FetchByCity failed: %v", err)
	}

	if gotPath != "/timingsByCity/20-02-2026" {
		t.Errorf("path = %s, want /timingsByCity/20-02-2026", gotPath)
	}
	for _, want := range []string{"city=Jakarta", "country=Indonesia", "method=20"} {
		if !strings.Contains(gotQuery, want) {
			t.Errorf("query %q missing %q", gotQuery, want)
		}
	}

	if timings.Fajr != "04:30" || timings.Maghrib != "18:10" {
		t.Errorf("unexpected timings: %+v", timings)
	}
}

func TestFetchByCity_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	_, err := client.FetchByCity(context.Background(), time.Now(), "Jakarta", "Indonesia")
	if err == nil {
		t.Error("a non-200 response should fail")
	}
}

func TestFetchByCity_BadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	_, err := client.FetchByCity(context.Background(), time.Now(), "Jakarta", "Indonesia")
	if err == nil {
		t.Error("an unparseable body should fail")
	}
}

func TestPlaceholderTimings(t *testing.T) {
	p := PlaceholderTimings()
	for _, v := range []string{p.Imsak, p.Fajr, p.Dhuhr, p.Asr, p.Maghrib, p.Isha} {
		if v != Placeholder {
			t.Errorf("placeholder entry = %q, want %q", v, Placeholder)
		}
	}
}
