// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-17
// Last Modified: 2026-10-17

package github

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v60/github"
	"golang.org/x/oauth2"
)

// NewClient creates a new GitHub client using the provided token.
// If token is empty, it returns an unauthenticated client.
func NewClient(ctx context.Context, token string) *Client {
	var tc *http.Client

	if token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		tc = oauth2.NewClient(ctx, ts)
	}

	client := github.NewClient(tc)

	return &Client{
		client: client,
		retry:  DefaultRetryConfig(),
	}
}

// NewClientWithBaseURL creates a client for a GitHub Enterprise instance or a test server.
func NewClientWithBaseURL(ctx context.Context, token, baseURL string) (*Client, error) {
	c := NewClient(ctx, token)

	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	c.client.BaseURL = u
	return c, nil
}
