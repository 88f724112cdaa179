// Package keygen mints Alpha Vantage API keys by driving the vendor's
// public signup form: it bootstraps a CSRF token from the support page,
// submits the registration form with a synthetic email, and extracts the
// issued key from the confirmation text.
package keygen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultSiteURL is the Alpha Vantage website root.
const DefaultSiteURL = "https://www.alphavantage.co"

// ErrNoKeyInResponse is returned when the signup confirmation text carries
// none of the known key phrasings.
var ErrNoKeyInResponse = errors.New("keygen: could not find API key in response")

// keyPatterns are the phrasings the signup endpoint has been observed to
// use when issuing a key.
var keyPatterns = []string{
	"API key: ",
	"Your API key is: ",
	"Your dedicated access key is: ",
	"access key: ",
}

var emailDomains = []string{"gmail.com", "yahoo.com", "hotmail.com", "outlook.com"}

// Generator mints API keys. It keeps a cookie jar so the CSRF cookie from
// the support page is replayed on the signup POST.
type Generator struct {
	httpc   *http.Client
	siteURL string
	log     *slog.Logger
}

// Option customizes a Generator.
type Option func(*Generator)

// WithSiteURL overrides the vendor site root, e.g. for tests.
func WithSiteURL(u string) Option {
	return func(g *Generator) { g.siteURL = strings.TrimSuffix(u, "/") }
}

// WithHTTPClient replaces the default HTTP client. A cookie jar is attached
// if the client has none.
func WithHTTPClient(h *http.Client) Option {
	return func(g *Generator) { g.httpc = h }
}

// New creates a Generator.
func New(log *slog.Logger, opts ...Option) *Generator {
	g := &Generator{
		httpc:   &http.Client{Timeout: 30 * time.Second},
		siteURL: DefaultSiteURL,
		log:     log,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.httpc.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err == nil {
			g.httpc.Jar = jar
		}
	}
	return g
}

// Generate requests a new API key from the vendor signup form.
func (g *Generator) Generate(ctx context.Context) (string, error) {
	token, err := g.csrfToken(ctx)
	if err != nil {
		return "", err
	}

	email := randomEmail()
	g.log.Info("requesting api key", slog.String("email", email))

	form := url.Values{}
	form.Set("csrfmiddlewaretoken", token)
	form.Set("first_text", "deprecated")
	form.Set("last_text", "deprecated")
	form.Set("occupation_text", "Investor")
	form.Set("organization_text", "Trading Corp")
	form.Set("email_text", email)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.siteURL+"/create_post/", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("keygen: build signup request: %w", err)
	}
	req.Header.Set("Accept", "*/*")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=UTF-8")
	req.Header.Set("Origin", g.siteURL)
	req.Header.Set("Referer", g.siteURL+"/support/")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	req.Header.Set("X-CSRFToken", token)

	resp, err := g.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("keygen: signup request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("keygen: signup returned status %d: %s", resp.StatusCode, body)
	}

	var payload struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("keygen: decode signup response: %w", err)
	}
	if payload.Text == "" {
		return "", errors.New("keygen: invalid response format from signup endpoint")
	}

	key, err := extractKey(payload.Text)
	if err != nil {
		return "", err
	}
	g.log.Info("api key generated")
	return key, nil
}

// csrfToken fetches the support page and returns the CSRF token, preferring
// the csrftoken cookie and falling back to the hidden form input.
func (g *Generator) csrfToken(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.siteURL+"/support/", nil)
	if err != nil {
		return "", fmt.Errorf("keygen: build support request: %w", err)
	}
	resp, err := g.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("keygen: fetch support page: %w", err)
	}
	defer resp.Body.Close()

	if g.httpc.Jar != nil {
		supportURL, _ := url.Parse(g.siteURL + "/support/")
		for _, cookie := range g.httpc.Jar.Cookies(supportURL) {
			if cookie.Name == "csrftoken" && cookie.Value != "" {
				return cookie.Value, nil
			}
		}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("keygen: parse support page: %w", err)
	}
	token, ok := doc.Find(`input[name="csrfmiddlewaretoken"]`).First().Attr("value")
	if !ok || token == "" {
		return "", errors.New("keygen: failed to get CSRF token")
	}
	return token, nil
}

// extractKey pulls the API key out of the confirmation text. The key runs
// from the known pattern up to the next period.
func extractKey(text string) (string, error) {
	for _, pattern := range keyPatterns {
		idx := strings.Index(text, pattern)
		if idx < 0 {
			continue
		}
		key := text[idx+len(pattern):]
		if dot := strings.Index(key, "."); dot >= 0 {
			key = key[:dot]
		}
		return strings.TrimSpace(key), nil
	}
	return "", ErrNoKeyInResponse
}

// randomEmail builds a plausible throwaway registration address.
func randomEmail() string {
	const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	n := 6 + rand.IntN(7)
	user := make([]byte, n)
	for i := range user {
		user[i] = alphabet[rand.IntN(len(alphabet))]
	}
	year := 1980 + rand.IntN(21)
	domain := emailDomains[rand.IntN(len(emailDomains))]
	return fmt.Sprintf("%s+%d@%s", user, year, domain)
}
