package server

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccollicutt/recipemd/pkg/config"
	"github.com/ccollicutt/recipemd/pkg/recipemd"
)

func newTestServer(t *testing.T, maxBody int64) *httptest.Server {
	t.Helper()
	s := New(config.ServerConfig{MaxBodyBytes: maxBody}, nil)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func post(t *testing.T, url, contentType, body string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Post(url, contentType, strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(data)
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t, 0)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("Content-Length"))
}

func TestParse(t *testing.T) {
	ts := newTestServer(t, 0)

	doc := "# R1\n- i1\n\n1. step\n# R2\n---\nyield: 2\ntime: 10m\n---\n- x\n- y\n\n1. s1\n# Draft\n"
	resp, body := post(t, ts.URL+"/v1/parse", "text/plain", doc)

	require.Equal(t, http.StatusOK, resp.StatusCode, body)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var parsed ParseResponse
	require.NoError(t, json.Unmarshal([]byte(body), &parsed))
	require.Len(t, parsed.Recipes, 2)
	assert.Equal(t, "R1", parsed.Recipes[0].Title)
	assert.Equal(t, "2", parsed.Recipes[1].Yield)
	assert.Equal(t, "10m", parsed.Recipes[1].TotalTime)
	assert.Equal(t, []string{"x", "y"}, parsed.Recipes[1].Ingredients())

	require.Len(t, parsed.Rejected, 1)
	assert.Equal(t, "# Draft", parsed.Rejected[0].Heading)
	assert.Equal(t, recipemd.RejectNoIngredients, parsed.Rejected[0].Reason)
}

func TestParse_NoRecipes(t *testing.T) {
	ts := newTestServer(t, 0)

	resp, body := post(t, ts.URL+"/v1/parse", "text/plain", "\n\n")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var parsed ParseResponse
	require.NoError(t, json.Unmarshal([]byte(body), &parsed))
	assert.Empty(t, parsed.Recipes)
}

func TestParse_BodyTooLarge(t *testing.T) {
	ts := newTestServer(t, 16)

	resp, body := post(t, ts.URL+"/v1/parse", "text/plain", "# A\n- x\n\n1. a fairly long step")
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode, body)
}

func TestFormat(t *testing.T) {
	ts := newTestServer(t, 0)

	resp, body := post(t, ts.URL+"/v1/format", "text/plain", "#  Toast \r\n* bread\r\n\r\n3) toast\r\n- eat\r\n")
	require.Equal(t, http.StatusOK, resp.StatusCode, body)
	assert.Equal(t, "# Toast\n\n- bread\n\n1. toast\n2. eat\n", body)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/markdown")
}

func TestFormat_NoRecipes(t *testing.T) {
	ts := newTestServer(t, 0)

	resp, body := post(t, ts.URL+"/v1/format", "text/plain", "# Title only")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body, "no valid recipe found")
}

func TestSerialize(t *testing.T) {
	ts := newTestServer(t, 0)

	single := `{"title":"Stew","ingredient_groups":[{"label":"","items":["beef"]}],"instructions":["simmer"],"yield":"4"}`
	resp, body := post(t, ts.URL+"/v1/serialize", "application/json", single)
	require.Equal(t, http.StatusOK, resp.StatusCode, body)
	assert.Equal(t, "# Stew\n---\nyield: 4\n---\n\n- beef\n\n1. simmer\n", body)

	list := `[{"title":"A","ingredient_groups":[{"label":"x","items":["1"]},{"label":"y","items":["2"]}],"instructions":["go"]},
	          {"title":"B","ingredient_groups":[{"items":["3"]}],"instructions":["stop"]}]`
	resp, body = post(t, ts.URL+"/v1/serialize", "application/json", list)
	require.Equal(t, http.StatusOK, resp.StatusCode, body)

	recipes := recipemd.ParseDocument(body)
	require.Len(t, recipes, 2)
	assert.Equal(t, []string{"1", "2"}, recipes[0].Ingredients())
	assert.Equal(t, "B", recipes[1].Title)
}

func TestSerialize_BadRequest(t *testing.T) {
	ts := newTestServer(t, 0)

	for _, body := range []string{"", "   ", "{not json", "[]", "[{]"} {
		resp, got := post(t, ts.URL+"/v1/serialize", "application/json", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "body %q -> %s", body, got)
	}
}

func TestSerialize_InvalidRecipe(t *testing.T) {
	ts := newTestServer(t, 0)

	bodies := []string{
		`{"title":"","ingredient_groups":[],"instructions":[]}`,
		`{"title":"A\n# Injected\n- x\n\n1. y","ingredient_groups":[{"items":["x"]}],"instructions":["y"]}`,
		`{"title":"A","ingredient_groups":[],"instructions":["y"]}`,
		`{"title":"A","ingredient_groups":[{"items":["x"]}],"instructions":[]}`,
		`{"title":"A","ingredient_groups":[{"items":[""]}],"instructions":["y"]}`,
		`{"title":"A","ingredient_groups":[{"items":["x\n# B"]}],"instructions":["y"]}`,
		`{"title":"A","ingredient_groups":[{"items":["x"]}],"instructions":["y\n\n# C"]}`,
		`[{"title":"A","ingredient_groups":[{"items":["x"]}],"instructions":["y"]},{"title":" "}]`,
	}
	for _, body := range bodies {
		resp, got := post(t, ts.URL+"/v1/serialize", "application/json", body)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode, "body %s -> %s", body, got)
		assert.Contains(t, got, "invalid recipe")
	}
}

func TestRequestID(t *testing.T) {
	ts := newTestServer(t, 0)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	generated := resp.Header.Get(RequestIDHeader)
	_, err = uuid.Parse(generated)
	assert.NoError(t, err, "generated id %q", generated)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	require.NoError(t, err)
	req.Header.Set(RequestIDHeader, "caller-42")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "caller-42", resp.Header.Get(RequestIDHeader))
}

func TestMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t, 0)

	resp, err := http.Get(ts.URL + "/v1/parse")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestServe_Shutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := New(config.ServerConfig{ReadTimeout: time.Second, WriteTimeout: time.Second}, nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	url := "http://" + ln.Addr().String() + "/healthz"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve() did not return after cancel")
	}
}
