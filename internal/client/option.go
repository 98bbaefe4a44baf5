package client

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"go.uber.org/zap"
)

type Option func(http.RoundTripper) http.RoundTripper

func WithTokenGetter(getter func() (string, error)) Option {
	return setHeaderFn("Authorization", func() (string, error) {
		token, err := getter()
		if err != nil {
			return "", err
		}
		return "Bearer " + token, nil
	})
}

func WithUserAgent(version string) Option {
	return setHeaderFn("User-Agent", func() (string, error) {
		return fmt.Sprintf("dbnb-cli/%s (%s; %s)", version, runtime.GOOS, runtime.GOARCH), nil
	})
}

func WithLogger(log *zap.Logger) Option {
	return func(rt http.RoundTripper) http.RoundTripper {
		return funcTripper(func(r *http.Request) (*http.Response, error) {
			start := time.Now()
			log.Debug(
				"send an API request",
				zap.String("path", r.URL.Path),
				zap.String("method", r.Method),
			)
			resp, err := rt.RoundTrip(r)
			if resp != nil {
				log.Debug(
					"received an API response",
					zap.Int("status", resp.StatusCode),
					zap.Duration("latency", time.Since(start)),
				)
			}
			return resp, err
		})
	}
}

func NewHTTPClient(client *http.Client, opts ...Option) *http.Client {
	if client == nil {
		client = &http.Client{
			Transport: http.DefaultTransport,
			Timeout:   30 * time.Second,
		}
	}
	for _, o := range opts {
		client.Transport = o(client.Transport)
	}
	return client
}

type funcTripper func(*http.Request) (*http.Response, error)

func (f funcTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func setHeaderFn(name string, valueGetter func() (string, error)) Option {
	return func(rt http.RoundTripper) http.RoundTripper {
		return funcTripper(func(r *http.Request) (*http.Response, error) {
			value, err := valueGetter()
			if err != nil {
				return nil, err
			}
			if r.Header.Get(name) == "" {
				r.Header.Set(name, value)
			}
			return rt.RoundTrip(r)
		})
	}
}
