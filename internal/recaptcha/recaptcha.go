package recaptcha

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	sl "contact_service/internal/lib/logger/sl"

	"github.com/go-chi/render"
)

const DefaultVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// SiteVerifyResponse is the body returned by the siteverify endpoint.
type SiteVerifyResponse struct {
	Success     bool     `json:"success"`
	ChallengeTS string   `json:"challenge_ts"`
	Hostname    string   `json:"hostname"`
	ErrorCodes  []string `json:"error-codes"`
}

type Client struct {
	log        *slog.Logger
	httpClient *http.Client
	verifyURL  string
	secret     string
}

func New(log *slog.Logger, httpClient *http.Client, verifyURL, secret string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if verifyURL == "" {
		verifyURL = DefaultVerifyURL
	}

	return &Client{
		log:        log,
		httpClient: httpClient,
		verifyURL:  verifyURL,
		secret:     secret,
	}
}

// Verify reports whether the provider accepted the token. Any failure to
// reach or understand the provider counts as not verified.
func (c *Client) Verify(ctx context.Context, token string) bool {
	const op = "recaptcha.Verify"

	log := c.log.With(slog.String("op", op))

	res, err := c.siteVerify(ctx, token)
	if err != nil {
		log.Warn("failed to verify reCAPTCHA", sl.Err(err))

		return false
	}

	if !res.Success {
		log.Info("reCAPTCHA rejected",
			slog.String("error_codes", strings.Join(res.ErrorCodes, ",")),
		)

		return false
	}

	return true
}

func (c *Client) siteVerify(ctx context.Context, token string) (*SiteVerifyResponse, error) {
	const op = "recaptcha.siteVerify"

	u, err := url.Parse(c.verifyURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	q := u.Query()
	q.Set("secret", c.secret)
	q.Set("response", token)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: unexpected status %d", op, resp.StatusCode)
	}

	var res SiteVerifyResponse
	if err := render.DecodeJSON(resp.Body, &res); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &res, nil
}
