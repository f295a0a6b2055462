package web

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/autobrr/go-numberline/internal/config"
)

func testDefaults() config.Defaults {
	return config.Defaults{Output: "Text", Simplify: true, Width: 800, Height: 400}
}

func get(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	NewHandler(testDefaults()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestPage(t *testing.T) {
	rec := get(t, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	for _, want := range []string{
		`<select id="denominatorSelect" name="den">`,
		`<option value="auto" selected>Auto</option>`,
		`<svg xmlns="http://www.w3.org/2000/svg"`,
		"Zoom in",
		"in 1/6, 7 ticks",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("missing %q in page", want)
		}
	}
}

func TestPageForcedDenominator(t *testing.T) {
	body := get(t, "/?low=0&high=1&den=4&simplify=true&simplify=false").Body.String()
	if !strings.Contains(body, `<option value="4" selected>1/4</option>`) {
		t.Fatalf("forced denominator not selected")
	}
	if !strings.Contains(body, "in 1/4 (forced), 5 ticks") {
		t.Fatalf("unexpected summary in page")
	}
}

func TestFrameJSON(t *testing.T) {
	rec := get(t, "/frame.json?low=0&high=1&simplify=false&rods=true")
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("Content-Type=%q", ct)
	}
	var payload struct {
		Denominator int  `json:"denominator"`
		Simplify    bool `json:"simplify"`
		Rods        []struct {
			Index int `json:"index"`
		} `json:"rods"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if payload.Denominator != 6 || payload.Simplify || len(payload.Rods) != 6 {
		t.Fatalf("unexpected payload %+v", payload)
	}
}

func TestFrameJSONZoom(t *testing.T) {
	rec := get(t, "/frame.json?low=0&high=1&zoom=693.1471805599453&at=0")
	var payload struct {
		Range struct {
			Low  float64 `json:"low"`
			High float64 `json:"high"`
		} `json:"range"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if payload.Range.Low != 0 || payload.Range.High < 0.499 || payload.Range.High > 0.501 {
		t.Fatalf("Range=%+v, want about [0 0.5]", payload.Range)
	}
}

func TestFrameJSONLargeMagnitude(t *testing.T) {
	type frameRange struct {
		Range struct {
			Low  float64 `json:"low"`
			High float64 `json:"high"`
		} `json:"range"`
	}
	cases := []struct {
		name   string
		target string
		low    float64
		high   float64
	}{
		{name: "narrow at 1e11", target: "/frame.json?low=1e11&high=100000000000.0001", low: 1e11, high: 100000000000.0001},
		{name: "pan past limit", target: "/frame.json?low=0&high=1&pan=1e300", low: 0, high: 1},
		{name: "zoom past limit", target: "/frame.json?low=999999999999&high=1e12&zoom=-1000&at=999999999999", low: 999999999999, high: 1e12},
		{name: "unusable width", target: "/frame.json?low=0&high=1&width=NaN&height=Inf", low: 0, high: 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := get(t, tc.target)
			if rec.Code != http.StatusOK {
				t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
			}
			var payload frameRange
			if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			if payload.Range.Low != tc.low || payload.Range.High != tc.high {
				t.Fatalf("Range=%+v, want [%v %v]", payload.Range, tc.low, tc.high)
			}
		})
	}
}

func TestSVG(t *testing.T) {
	rec := get(t, "/numberline.svg?low=-1&high=1")
	if rec.Code != http.StatusOK || rec.Header().Get("Content-Type") != "image/svg+xml" {
		t.Fatalf("status=%d Content-Type=%q", rec.Code, rec.Header().Get("Content-Type"))
	}
	if !strings.HasPrefix(rec.Body.String(), "<svg") {
		t.Fatalf("unexpected body %.60s", rec.Body.String())
	}
}

func TestBadQuery(t *testing.T) {
	for _, target := range []string{
		"/?low=x",
		"/frame.json?low=2&high=1",
		"/numberline.svg?den=half",
		"/?simplify=maybe",
	} {
		if rec := get(t, target); rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status=%d, want 400", target, rec.Code)
		}
	}
}

func TestUnknownPath(t *testing.T) {
	if rec := get(t, "/missing"); rec.Code != http.StatusNotFound {
		t.Fatalf("status=%d, want 404", rec.Code)
	}
}

func TestServerServeAndShutdown(t *testing.T) {
	srv, err := New(config.Server{Addr: "127.0.0.1:0", ReadHeaderTimeout: time.Second, ShutdownTimeout: time.Second}, testDefaults())
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx) }()

	resp, err := http.Get("http://" + srv.Addr() + "/healthz")
	if err != nil {
		cancel()
		t.Fatalf("get healthz: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if strings.TrimSpace(string(body)) != "ok" {
		t.Fatalf("healthz body=%q", body)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serve: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("server did not stop")
	}
}
