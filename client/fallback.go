// Package client 是平台的数据访问层：每个业务操作实现为一对
// 等价调用（远端 HTTP、 本地存储），统一经过降级编排器路由。
// 后端可达时行为与纯远端完全一致；后端连不上时对调用方透明地
// 切换到本地存储，返回类型和语义不变。
package client

import (
	"context"
	"errors"
	"io"
	"net"
	"net/url"
	"syscall"

	"go.uber.org/zap"

	"hitedu_backend/pkg/logger"
)

// StatusError 服务端已经受理请求并明确拒绝（非 2xx 响应）。
// 这类错误原样抛给调用方，绝不触发降级。
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return e.Message
}

// DecodeError 响应已经收到但 JSON 无法解析。服务端可达但行为异常
// 是服务端的问题，不是可用性问题，同样不触发降级。
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return "decode " + e.Op + " response: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsTransportError 判断错误是否属于传输失败：请求根本没有到达
// 任何服务端（DNS 解析失败、连接被拒、网络不可达、连接中途断开）。
// 这是整个降级协议最关键的一条判定——把业务拒绝误判为传输失败
// 会悄悄掩盖后端的校验错误，反过来则失去离线可用性。
func IsTransportError(err error) bool {
	if err == nil {
		return false
	}

	// 已完成往返的失败一律不算
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return false
	}
	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return false
	}

	// 调用方主动取消不是后端不可达
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, syscall.EHOSTUNREACH) ||
		errors.Is(err, syscall.ENETUNREACH) {
		return true
	}
	// 连接建立后对端直接断开
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}

	// url.Error 包裹的其他网络层错误
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if _, ok := urlErr.Err.(net.Error); ok && !urlErr.Timeout() {
			return true
		}
	}

	return false
}

// runWithFallback 执行 primary；仅当失败被判定为传输错误时改走
// secondary，其余错误原样返回。对每次调用，最终结果必属于
// {主成功, 主业务错误, 备成功, 备错误} 之一——只要主存储给出了
// 响应（无论成败），备存储一定不会被触碰。
func runWithFallback[T any](
	ctx context.Context,
	op string,
	primary func(context.Context) (T, error),
	secondary func(context.Context) (T, error),
) (T, error) {
	result, err := primary(ctx)
	if err == nil {
		return result, nil
	}
	if !IsTransportError(err) {
		return result, err
	}

	logger.Log.Warn("后端连接失败，降级到本地存储",
		zap.String("operation", op),
		zap.Error(err),
	)
	return secondary(ctx)
}

// runWithFallbackErr 无返回值操作的便捷包装
func runWithFallbackErr(
	ctx context.Context,
	op string,
	primary func(context.Context) error,
	secondary func(context.Context) error,
) error {
	_, err := runWithFallback(ctx, op,
		func(ctx context.Context) (struct{}, error) { return struct{}{}, primary(ctx) },
		func(ctx context.Context) (struct{}, error) { return struct{}{}, secondary(ctx) },
	)
	return err
}
