package server

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/lmoretti/vaxweek/internal/config"
	"github.com/lmoretti/vaxweek/pkg/core/services"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := &config.Config{
		AgeBreakpoints: []int{40, 60},
		WeeklyHours:    []int{1, 0, 0, 0, 0, 0, 0},
		Hubs: []config.HubConfig{
			{Name: "Central", Doctors: 1, Nurses: 1, Other: 1},
		},
	}
	session, err := services.BuildSession(cfg, zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, session.Registry.AddPerson("Jane", "Doe", "AAA111", 1956))
	require.NoError(t, session.Registry.AddPerson("John", "Roe", "BBB222", 1981))

	return New(session, zap.NewNop())
}

func doRequest(t *testing.T, s *Server, method, path string) *fasthttp.RequestCtx {
	t.Helper()
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(path)
	s.Handler(ctx)
	return ctx
}

func decodeBody(t *testing.T, ctx *fasthttp.RequestCtx) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &body))
	return body
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	s := newTestServer(t)
	ctx := doRequest(t, s, fasthttp.MethodPost, "/plan")
	assert.Equal(t, fasthttp.StatusMethodNotAllowed, ctx.Response.StatusCode())
}

func TestHandler_UnknownPath(t *testing.T) {
	s := newTestServer(t)
	ctx := doRequest(t, s, fasthttp.MethodGet, "/nope")
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())

	// Error responses carry a JSON body.
	body := decodeBody(t, ctx)
	assert.Equal(t, float64(fasthttp.StatusNotFound), body["status"])
	assert.NotEmpty(t, body["message"])
}

func TestHandler_Capacity(t *testing.T) {
	s := newTestServer(t)
	ctx := doRequest(t, s, fasthttp.MethodGet, "/capacity")
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	body := decodeBody(t, ctx)
	hourly := body["hourlyCapacity"].(map[string]any)
	assert.Equal(t, float64(10), hourly["Central"])

	weekly := body["weeklyAvailability"].(map[string]any)
	days := weekly["Central"].([]any)
	require.Len(t, days, 7)
	assert.Equal(t, float64(10), days[0])
	assert.Equal(t, float64(0), days[1])
}

func TestHandler_Slots(t *testing.T) {
	s := newTestServer(t)
	ctx := doRequest(t, s, fasthttp.MethodGet, "/slots")
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	body := decodeBody(t, ctx)
	slots := body["timeSlots"].([]any)
	require.Len(t, slots, 7)
	monday := slots[0].([]any)
	require.Len(t, monday, 4)
	assert.Equal(t, "09:00", monday[0])
	assert.Equal(t, "09:45", monday[3])
}

func TestHandler_PlanAndStats(t *testing.T) {
	s := newTestServer(t)

	ctx := doRequest(t, s, fasthttp.MethodGet, "/plan")
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	body := decodeBody(t, ctx)
	assert.NotEmpty(t, body["planId"])
	plan := body["plan"].([]any)
	require.Len(t, plan, 7)
	monday := plan[0].(map[string]any)
	assert.Len(t, monday["Central"].([]any), 2)

	// The plan run leaves allocation state behind for /stats.
	ctx = doRequest(t, s, fasthttp.MethodGet, "/stats")
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	body = decodeBody(t, ctx)
	proportion := body["proportionAllocated"].(map[string]any)
	assert.Equal(t, true, proportion["valid"])
	assert.Equal(t, float64(1), proportion["value"])
}
