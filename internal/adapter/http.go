package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-day-keeper/internal/config"
	"github.com/MKhiriev/go-day-keeper/internal/logger"
	"github.com/MKhiriev/go-day-keeper/models"
	"github.com/go-resty/resty/v2"
)

// DefaultGateEndpoint is the production launch-gate URL baked into every
// client build. Overridable via [config.ClientGate] for tests and
// self-hosted gates.
const DefaultGateEndpoint = "https://gate.daykeeper.io/launch-config"

// defaultFetchTimeout bounds a single launch-config fetch.
const defaultFetchTimeout = 10 * time.Second

type launchGateClient struct {
	client   *resty.Client
	endpoint string

	logger *logger.Logger
}

// NewLaunchGateClient constructs the HTTP implementation of [ConfigFetcher].
//
// The endpoint and timeout default to [DefaultGateEndpoint] and 10 seconds;
// non-zero fields of gateCfg override them. The endpoint is deliberately NOT
// validated here: a malformed override must surface as a classified outcome
// of Fetch, not as a construction failure.
func NewLaunchGateClient(gateCfg config.ClientGate, logger *logger.Logger) ConfigFetcher {
	endpoint := gateCfg.EndpointURL
	if endpoint == "" {
		endpoint = DefaultGateEndpoint
	}

	timeout := gateCfg.RequestTimeout
	if timeout == 0 {
		timeout = defaultFetchTimeout
	}

	client := resty.New().
		SetTimeout(timeout)

	return &launchGateClient{client: client, endpoint: endpoint, logger: logger}
}

// Fetch implements [ConfigFetcher]. Classification, in order:
//
//  1. Endpoint not parsable as an absolute URL: Failed (configuration).
//  2. Request failed below HTTP (DNS, refused, timeout): Failed (transport).
//  3. Response carries no status metadata: Failed (transport).
//  4. HTTP 429: RateLimited.
//  5. Other non-2xx status: Failed (http) with the status embedded.
//  6. 2xx whose body is not a launch-config document: Failed (response).
//  7. 2xx with a parsed document: Completed, destination possibly empty.
func (g *launchGateClient) Fetch(ctx context.Context) models.FetchOutcome {
	if err := validateEndpoint(g.endpoint); err != nil {
		g.logger.Error().Err(err).Str("endpoint", g.endpoint).Msg("launch-gate endpoint rejected")
		return models.NewFailedOutcome(models.NewErrorDetail(
			models.ErrorDomainConfiguration, models.NonHTTPCode, msgInvalidConfigURL,
		))
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(g.endpoint)
	if err != nil {
		g.logger.Warn().Err(err).Msg("launch-config fetch failed in transport")
		return models.NewFailedOutcome(models.NewErrorDetail(
			models.ErrorDomainTransport, models.NonHTTPCode, err.Error(),
		))
	}

	outcome := classifyLaunchResponse(resp)
	g.logger.Debug().
		Stringer("outcome", outcome.Kind).
		Int("status", resp.StatusCode()).
		Msg("launch-config fetch classified")

	return outcome
}

// validateEndpoint rejects endpoints that cannot produce a well-formed HTTP
// request: unparsable URLs and URLs missing a scheme or host.
func validateEndpoint(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fmt.Errorf("empty endpoint")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("endpoint must include host and scheme")
	}

	return nil
}
