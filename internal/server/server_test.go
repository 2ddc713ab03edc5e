package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/linprimer/internal/lesson"
)

// The scene encoding is write-only, so tests decode frames into the parts
// they check.
type testFrames struct {
	Animation string `json:"animation"`
	From      int    `json:"from"`
	Frames    []struct {
		Tick  int `json:"tick"`
		Frame struct {
			Scene    json.RawMessage  `json:"scene"`
			Readouts []lesson.Readout `json:"readouts"`
		} `json:"frame"`
		Canvas string `json:"canvas"`
	} `json:"frames"`
}

type testDocument struct {
	lesson.Summary
	Blocks []json.RawMessage `json:"blocks"`
}

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	s := New(Options{Precision: 2})
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func get(t *testing.T, ts *httptest.Server, path string, out any) int {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil {
		require.NoError(t, json.Unmarshal(body, out), string(body))
	}
	return resp.StatusCode
}

func TestHealthz(t *testing.T) {
	_, ts := newTestServer(t)
	var out map[string]string
	assert.Equal(t, http.StatusOK, get(t, ts, "/healthz", &out))
	assert.Equal(t, "ok", out["status"])
}

func TestSections(t *testing.T) {
	s, ts := newTestServer(t)

	var list []lesson.Summary
	require.Equal(t, http.StatusOK, get(t, ts, "/api/sections", &list))
	require.Len(t, list, 11)
	assert.Equal(t, "spaces", list[0].ID)
	assert.Equal(t, "null-space", list[10].ID)

	var doc testDocument
	require.Equal(t, http.StatusOK, get(t, ts, "/api/sections/vectors", &doc))
	assert.Equal(t, "Vectors", doc.Title)
	assert.Equal(t, 6, doc.Animations)
	assert.NotEmpty(t, doc.Blocks)
	assert.Equal(t, 1, s.docs.ItemCount())

	require.Equal(t, http.StatusOK, get(t, ts, "/api/sections/vectors", &doc))
	assert.Equal(t, 1, s.docs.ItemCount())

	var errResp errorResponse
	assert.Equal(t, http.StatusNotFound, get(t, ts, "/api/sections/nope", &errResp))
	assert.Contains(t, errResp.Error, "nope")
}

func TestFrames(t *testing.T) {
	_, ts := newTestServer(t)

	var out testFrames
	require.Equal(t, http.StatusOK, get(t, ts, "/api/sections/vectors/animations/1/frames?from=1&count=3", &out))
	assert.Equal(t, "vectors/1", out.Animation)
	assert.Equal(t, 1, out.From)
	require.Len(t, out.Frames, 3)

	want := []float64{0.04, 0.09, 0.14}
	for i, f := range out.Frames {
		assert.Equal(t, i+1, f.Tick)
		require.Len(t, f.Frame.Readouts, 1)
		assert.InDelta(t, want[i], f.Frame.Readouts[0].Value, 1e-9)
		assert.Empty(t, f.Canvas)
	}

	require.Equal(t, http.StatusOK, get(t, ts, "/api/sections/spaces/animations/0/frames?canvas=40", &out))
	require.Len(t, out.Frames, 1)
	assert.Equal(t, 0, out.Frames[0].Tick)
	assert.NotEmpty(t, out.Frames[0].Canvas)
}

func TestFramesErrors(t *testing.T) {
	_, ts := newTestServer(t)

	tests := []struct {
		path string
		code int
	}{
		{"/api/sections/nope/animations/0/frames", http.StatusNotFound},
		{"/api/sections/vectors/animations/99/frames", http.StatusNotFound},
		{"/api/sections/vectors/animations/abc/frames", http.StatusBadRequest},
		{"/api/sections/vectors/animations/0/frames?count=0", http.StatusBadRequest},
		{"/api/sections/vectors/animations/0/frames?count=601", http.StatusBadRequest},
		{"/api/sections/vectors/animations/0/frames?from=-1", http.StatusBadRequest},
		{"/api/sections/vectors/animations/0/frames?from=10001", http.StatusBadRequest},
		{"/api/sections/vectors/animations/0/frames?from=1000000000000", http.StatusBadRequest},
		{"/api/sections/vectors/animations/0/frames?canvas=x", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			var errResp errorResponse
			assert.Equal(t, tt.code, get(t, ts, tt.path, &errResp))
			assert.NotEmpty(t, errResp.Error)
		})
	}
}

func TestFramesDecimalParams(t *testing.T) {
	_, ts := newTestServer(t)

	var out testFrames
	require.Equal(t, http.StatusOK, get(t, ts, "/api/sections/vectors/animations/1/frames?from=010&count=08", &out))
	assert.Equal(t, 10, out.From)
	assert.Len(t, out.Frames, 8)
	assert.Equal(t, 17, out.Frames[7].Tick)
}

func TestFramesStopsWhenRequestIsDone(t *testing.T) {
	s := New(Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/sections/vectors/animations/1/frames?from=%d", MaxFrom), nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req.WithContext(ctx))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var errResp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Contains(t, errResp.Error, "canceled")
}

func TestTeX(t *testing.T) {
	_, ts := newTestServer(t)

	var out texResponse
	require.Equal(t, http.StatusOK, get(t, ts, "/api/tex?m="+url.QueryEscape("1,2;3,4"), &out))
	assert.Equal(t, `\begin{bmatrix} 1 & 2 \\ 3 & 4 \end{bmatrix}`, out.Markup)
	assert.False(t, out.Inline)
	assert.Equal(t, "bmatrix", out.Env)

	require.Equal(t, http.StatusOK, get(t, ts, "/api/tex?inline=true&env=pmatrix&m="+url.QueryEscape("x;y"), &out))
	assert.True(t, out.Inline)
	assert.Equal(t, `\begin{pmatrix} x \\ y \end{pmatrix}`, out.Markup)

	var errResp errorResponse
	assert.Equal(t, http.StatusBadRequest, get(t, ts, "/api/tex", &errResp))
	assert.Equal(t, http.StatusBadRequest, get(t, ts, "/api/tex?m=1&env=cases", &errResp))
	assert.Equal(t, http.StatusBadRequest, get(t, ts, "/api/tex?m=1&inline=maybe", &errResp))
}

func TestTruncate(t *testing.T) {
	_, ts := newTestServer(t)

	var out truncateResponse
	require.Equal(t, http.StatusOK, get(t, ts, "/api/truncate?v=-0.871", &out))
	assert.Equal(t, 2, out.Precision)
	assert.Equal(t, -0.88, out.Truncated)
	assert.Equal(t, "-0.88", out.Text)

	require.Equal(t, http.StatusOK, get(t, ts, "/api/truncate?v=3.14159&p=4", &out))
	assert.Equal(t, 3.1415, out.Truncated)

	for _, q := range []string{"", "?v=abc", "?v=NaN", "?v=1&p=x", "?v=1&p=99"} {
		var errResp errorResponse
		assert.Equal(t, http.StatusBadRequest, get(t, ts, "/api/truncate"+q, &errResp), q)
	}
}

func TestMetricsAndNotFound(t *testing.T) {
	_, ts := newTestServer(t)

	var errResp errorResponse
	assert.Equal(t, http.StatusNotFound, get(t, ts, "/nowhere", &errResp))
	assert.Equal(t, http.StatusOK, get(t, ts, "/api/sections/vectors/animations/1/frames?count=2", nil))

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	text := string(body)
	assert.Contains(t, text, `linprimer_http_requests_total{code="404"`)
	assert.Contains(t, text, `linprimer_ticks_total{animation="vectors/1"} 1`)
	assert.Contains(t, text, "linprimer_frame_render_seconds_count 2")
}
