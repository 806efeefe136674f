package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func TestScope_StoresRequestIDAndTaggedLogger(t *testing.T) {
	base, buf := newBufferLogger()

	ctx, logger := Scope(context.Background(), "req-42", base)
	assert.Equal(t, "req-42", GetRequestIDFromContext(ctx))
	assert.Same(t, logger, GetLogger(ctx))

	GetLoggerOrDefault(ctx, nil).Info("[Test] hello")
	assert.Contains(t, buf.String(), "request_id=req-42")
}

func TestWithSpoolMeter(t *testing.T) {
	base, buf := newBufferLogger()
	ctx, _ := Scope(context.Background(), "req-1", base)

	scoped := WithSpoolMeter(ctx, "SM-7", base)
	assert.Equal(t, "SM-7", GetSpoolMeterID(scoped))
	assert.Empty(t, GetSpoolMeterID(ctx))

	GetLoggerOrDefault(scoped, base).Info("[Test] tagged")
	line := buf.String()
	assert.Contains(t, line, "request_id=req-1")
	assert.Contains(t, line, "spool_meter_id=SM-7")

	again := WithSpoolMeter(scoped, "SM-7", base)
	buf.Reset()
	GetLoggerOrDefault(again, base).Info("[Test] once")
	assert.Equal(t, 1, strings.Count(buf.String(), "spool_meter_id="))

	assert.Equal(t, ctx, WithSpoolMeter(ctx, "", base))
}

func TestWithSpoolMeter_FallsBackWithoutRequestLogger(t *testing.T) {
	base, buf := newBufferLogger()

	ctx := WithSpoolMeter(context.Background(), "SM-9", base)
	GetLoggerOrDefault(ctx, nil).Info("[Test] fallback")
	assert.Contains(t, buf.String(), "spool_meter_id=SM-9")
}

func TestGetRequestID_EchoContext(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	minted := GetRequestID(c)
	require.NotEmpty(t, minted)

	SetRequestID(c, "req-echo")
	assert.Equal(t, "req-echo", GetRequestID(c))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}
