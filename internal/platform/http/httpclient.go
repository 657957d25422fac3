// Package http holds HTTP plumbing shared by the server and outbound clients.
package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient は外部API（投資信託データ提供元）呼び出し用のHTTPクライアントを作成します。
//
// http.DefaultClient has no timeout, so outbound calls always go through
// this client. timeout bounds the whole request including the body read.
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ResponseHeaderTimeout: timeout,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
