package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTransportError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"status error", &StatusError{Code: 401, Message: "用户名、密码或角色错误"}, false},
		{"wrapped status error", fmt.Errorf("login: %w", &StatusError{Code: 500, Message: "boom"}), false},
		{"decode error", &DecodeError{Op: "GET /videos", Err: io.ErrUnexpectedEOF}, false},
		{"context canceled", fmt.Errorf("POST /auth/login: %w", context.Canceled), false},
		{"deadline exceeded", context.DeadlineExceeded, false},
		{"plain business error", errors.New("该角色下的用户名已存在"), false},
		{"dns failure", &url.Error{Op: "Get", URL: "http://x", Err: &net.DNSError{Name: "x", IsNotFound: true}}, true},
		{"connection refused", &url.Error{Op: "Post", URL: "http://localhost:1", Err: &net.OpError{Op: "dial", Err: syscall.ECONNREFUSED}}, true},
		{"wrapped op error", fmt.Errorf("POST /videos: %w", &net.OpError{Op: "dial", Err: syscall.ECONNREFUSED}), true},
		{"connection reset", fmt.Errorf("read: %w", syscall.ECONNRESET), true},
		{"server closed connection", &url.Error{Op: "Get", URL: "http://x", Err: io.EOF}, true},
		{"network unreachable", syscall.ENETUNREACH, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTransportError(tt.err))
		})
	}
}

func TestIsTransportError_RealDialFailure(t *testing.T) {
	// 占住端口再关闭，保证请求得到 connection refused
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	resp, err := http.Get(addr)
	if resp != nil {
		resp.Body.Close()
	}
	require.Error(t, err)
	assert.True(t, IsTransportError(err))
}

func TestRunWithFallback_PrimarySuccess(t *testing.T) {
	secondaryCalls := 0
	got, err := runWithFallback(context.Background(), "op",
		func(ctx context.Context) (string, error) { return "primary", nil },
		func(ctx context.Context) (string, error) {
			secondaryCalls++
			return "secondary", nil
		},
	)

	require.NoError(t, err)
	assert.Equal(t, "primary", got)
	assert.Zero(t, secondaryCalls, "primary succeeded, secondary must not run")
}

func TestRunWithFallback_ApplicationErrorPropagates(t *testing.T) {
	secondaryCalls := 0
	_, err := runWithFallback(context.Background(), "op",
		func(ctx context.Context) (string, error) {
			return "", &StatusError{Code: 401, Message: "用户名、密码或角色错误"}
		},
		func(ctx context.Context) (string, error) {
			secondaryCalls++
			return "secondary", nil
		},
	)

	require.Error(t, err)
	assert.Equal(t, "用户名、密码或角色错误", err.Error())
	assert.Zero(t, secondaryCalls, "application rejection must never trigger fallback")
}

func TestRunWithFallback_TransportErrorFallsBack(t *testing.T) {
	primaryCalls, secondaryCalls := 0, 0
	got, err := runWithFallback(context.Background(), "op",
		func(ctx context.Context) (string, error) {
			primaryCalls++
			return "", &net.OpError{Op: "dial", Err: syscall.ECONNREFUSED}
		},
		func(ctx context.Context) (string, error) {
			secondaryCalls++
			return "secondary", nil
		},
	)

	require.NoError(t, err)
	assert.Equal(t, "secondary", got)
	assert.Equal(t, 1, primaryCalls)
	assert.Equal(t, 1, secondaryCalls)
}

func TestRunWithFallback_SecondaryErrorSurfaces(t *testing.T) {
	wantErr := errors.New("该角色下的用户名已存在")
	_, err := runWithFallback(context.Background(), "op",
		func(ctx context.Context) (string, error) {
			return "", syscall.ECONNREFUSED
		},
		func(ctx context.Context) (string, error) {
			return "", wantErr
		},
	)

	assert.ErrorIs(t, err, wantErr)
}

func TestRunWithFallback_DecodeErrorPropagates(t *testing.T) {
	secondaryCalls := 0
	_, err := runWithFallback(context.Background(), "op",
		func(ctx context.Context) (string, error) {
			return "", &DecodeError{Op: "GET /videos", Err: io.ErrUnexpectedEOF}
		},
		func(ctx context.Context) (string, error) {
			secondaryCalls++
			return "secondary", nil
		},
	)

	require.Error(t, err)
	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
	assert.Zero(t, secondaryCalls, "可达但损坏的服务端是服务端问题，不降级")
}
