package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftlabs/weft"
	"github.com/weftlabs/weft/pkg/tokens"
)

func testHandler(t *testing.T) http.Handler {
	t.Helper()
	tree := tokens.Tree{
		"color": map[string]any{
			"text":       map[string]any{"value": "#0f172a"},
			"background": map[string]any{"value": "#ffffff"},
			"linked":     map[string]any{"value": "{color.text}"},
		},
		"loop": map[string]any{"value": "{loop}"},
		"bad":  map[string]any{"value": 1},
	}
	project, err := weft.New("", weft.WithTree(tree))
	require.NoError(t, err)
	return NewHandler(project, nil)
}

func doGet(t *testing.T, handler http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestGetHealth(t *testing.T) {
	rr := doGet(t, testHandler(t), "/healthz")

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestGetInfo(t *testing.T) {
	rr := doGet(t, testHandler(t), "/info")

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "weft-http", resp["app"])
	assert.NotEmpty(t, resp["version"])
}

func TestGetResolve(t *testing.T) {
	rr := doGet(t, testHandler(t), "/resolve?ref={color.linked}")

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "#0f172a", resp["value"])
}

func TestGetResolve_ErrorMapping(t *testing.T) {
	handler := testHandler(t)

	cases := []struct {
		name     string
		target   string
		wantCode int
		wantKind string
	}{
		{"missing ref param", "/resolve", http.StatusBadRequest, ""},
		{"unknown path", "/resolve?ref={color.nope}", http.StatusNotFound, "path_not_found"},
		{"cycle", "/resolve?ref={loop}", http.StatusUnprocessableEntity, "circular_reference"},
		{"invalid leaf", "/resolve?ref={bad}", http.StatusBadRequest, "invalid_argument"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := doGet(t, handler, tc.target)
			assert.Equal(t, tc.wantCode, rr.Code)

			var resp errorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
			if tc.wantKind != "" {
				assert.Equal(t, tc.wantKind, resp.Kind)
			}
		})
	}
}

func TestGetTokens(t *testing.T) {
	// The fixture tree contains broken tokens on purpose; a healthy
	// tree is needed here.
	tree := tokens.Tree{
		"color": map[string]any{
			"text":   map[string]any{"value": "#0f172a"},
			"linked": map[string]any{"value": "{color.text}"},
		},
		"spacing": map[string]any{"md": map[string]any{"value": "16px"}},
	}
	project, err := weft.New("", weft.WithTree(tree))
	require.NoError(t, err)
	handler := NewHandler(project, nil)

	rr := doGet(t, handler, "/tokens")
	assert.Equal(t, http.StatusOK, rr.Code)

	var flat []tokens.FlatToken
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &flat))
	require.Len(t, flat, 3)
	assert.Equal(t, "color.linked", flat[0].Path)
	assert.Equal(t, "#0f172a", flat[0].Value)

	rr = doGet(t, handler, "/tokens?prefix=spacing")
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &flat))
	require.Len(t, flat, 1)
	assert.Equal(t, "spacing.md", flat[0].Path)
}

func TestGetTree(t *testing.T) {
	rr := doGet(t, testHandler(t), "/tokens/tree")

	assert.Equal(t, http.StatusOK, rr.Code)

	var tree map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &tree))
	assert.Contains(t, tree, "color")
}

func TestGetContrast(t *testing.T) {
	rr := doGet(t, testHandler(t), "/contrast?fg={color.text}&bg={color.background}")

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Ratio float64 `json:"ratio"`
		Grade string  `json:"grade"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Greater(t, resp.Ratio, 4.5)
	assert.NotEmpty(t, resp.Grade)
}

func TestGetContrast_BadColour(t *testing.T) {
	// Literal values pass through resolution, then fail colour parsing.
	rr := doGet(t, testHandler(t), "/contrast?fg=banana&bg=%23fff")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	handler := testHandler(t)
	doGet(t, handler, "/healthz")

	rr := doGet(t, handler, "/metrics")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "weft_http_requests_total")
}
