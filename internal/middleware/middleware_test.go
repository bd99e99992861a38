package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/mmynk/budgetwise/internal/service"
)

const pingProcedure = "/test.v1.PingService/Ping"

type pingRequest struct {
	Fail bool `json:"fail"`
}

type pingResponse struct {
	RequestID string `json:"request_id"`
}

// setupPingServer serves one procedure that echoes the request ID it sees.
func setupPingServer(t *testing.T, interceptors ...connect.Interceptor) *connect.Client[pingRequest, pingResponse] {
	t.Helper()

	handler := connect.NewUnaryHandler(pingProcedure,
		func(ctx context.Context, req *connect.Request[pingRequest]) (*connect.Response[pingResponse], error) {
			if req.Msg.Fail {
				return nil, connect.NewError(connect.CodeNotFound, errors.New("nothing here"))
			}
			return connect.NewResponse(&pingResponse{RequestID: RequestID(ctx)}), nil
		},
		connect.WithCodec(service.JSONCodec{}),
		connect.WithInterceptors(interceptors...),
	)

	mux := http.NewServeMux()
	mux.Handle(pingProcedure, handler)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return connect.NewClient[pingRequest, pingResponse](http.DefaultClient, server.URL+pingProcedure,
		connect.WithCodec(service.JSONCodec{}))
}

// captureLogs routes the default logger into a buffer for the duration of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestLoggingInterceptor_AssignsRequestID(t *testing.T) {
	logs := captureLogs(t)
	client := setupPingServer(t, LoggingInterceptor())

	resp, err := client.CallUnary(context.Background(), connect.NewRequest(&pingRequest{}))
	if err != nil {
		t.Fatalf("Ping failed: %v", err)
	}

	id := resp.Header().Get(RequestIDHeader)
	if id == "" {
		t.Fatal("expected request ID header")
	}
	if resp.Msg.RequestID != id {
		t.Errorf("handler saw %q, header has %q", resp.Msg.RequestID, id)
	}
	if !strings.Contains(logs.String(), `"msg":"RPC ok"`) || !strings.Contains(logs.String(), id) {
		t.Errorf("expected RPC ok log with request id, got %s", logs.String())
	}
}

func TestLoggingInterceptor_KeepsCallerRequestID(t *testing.T) {
	captureLogs(t)
	client := setupPingServer(t, LoggingInterceptor())

	req := connect.NewRequest(&pingRequest{})
	req.Header().Set(RequestIDHeader, "abc-123")

	resp, err := client.CallUnary(context.Background(), req)
	if err != nil {
		t.Fatalf("Ping failed: %v", err)
	}
	if resp.Msg.RequestID != "abc-123" {
		t.Errorf("expected abc-123, got %q", resp.Msg.RequestID)
	}
}

func TestLoggingInterceptor_Error(t *testing.T) {
	logs := captureLogs(t)
	client := setupPingServer(t, LoggingInterceptor())

	_, err := client.CallUnary(context.Background(), connect.NewRequest(&pingRequest{Fail: true}))
	if connect.CodeOf(err) != connect.CodeNotFound {
		t.Fatalf("expected not_found, got %v", err)
	}

	var connectErr *connect.Error
	if !errors.As(err, &connectErr) || connectErr.Meta().Get(RequestIDHeader) == "" {
		t.Error("expected request ID in error metadata")
	}
	if !strings.Contains(logs.String(), `"level":"WARN"`) || !strings.Contains(logs.String(), `"code":"not_found"`) {
		t.Errorf("expected warning with code, got %s", logs.String())
	}
}

func TestMetricsInterceptor(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	client := setupPingServer(t, metrics.Interceptor())

	for i := 0; i < 2; i++ {
		if _, err := client.CallUnary(context.Background(), connect.NewRequest(&pingRequest{})); err != nil {
			t.Fatalf("Ping failed: %v", err)
		}
	}
	_, _ = client.CallUnary(context.Background(), connect.NewRequest(&pingRequest{Fail: true}))

	if got := testutil.ToFloat64(metrics.requests.WithLabelValues(pingProcedure, "ok")); got != 2 {
		t.Errorf("expected 2 ok calls, got %v", got)
	}
	if got := testutil.ToFloat64(metrics.requests.WithLabelValues(pingProcedure, "not_found")); got != 1 {
		t.Errorf("expected 1 not_found call, got %v", got)
	}
	if got := testutil.CollectAndCount(metrics.duration); got != 1 {
		t.Errorf("expected one duration series, got %d", got)
	}
}
