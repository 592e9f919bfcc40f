package utils

import (
	"net/http"
	"time"
)

const defaultTimeout = 30 * time.Second

type Option func(*http.Client)

func WithTimeout(timeout time.Duration) Option {
	return func(c *http.Client) {
		c.Timeout = timeout
	}
}

func NewHTTPClient(opts ...Option) *http.Client {
	c := &http.Client{Timeout: defaultTimeout}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func DefaultHTTPClient() *http.Client {
	return NewHTTPClient()
}
