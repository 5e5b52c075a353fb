package adapter

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-day-keeper/internal/config"
	"github.com/MKhiriev/go-day-keeper/internal/logger"
	"github.com/go-resty/resty/v2"
)

// defaultProbeTimeout bounds a single destination reachability check.
const defaultProbeTimeout = 10 * time.Second

type destinationProber struct {
	client *resty.Client

	logger *logger.Logger
}

// NewDestinationProber constructs the HTTP implementation of
// [DestinationProber]. The timeout defaults to 10 seconds; a non-zero
// gateCfg.ProbeTimeout overrides it.
func NewDestinationProber(gateCfg config.ClientGate, logger *logger.Logger) DestinationProber {
	timeout := gateCfg.ProbeTimeout
	if timeout == 0 {
		timeout = defaultProbeTimeout
	}

	client := resty.New().
		SetTimeout(timeout)

	return &destinationProber{client: client, logger: logger}
}

// Probe implements [DestinationProber]. It sends a bare HEAD request to
// destination and reports anything but a 2xx answer as
// [ErrDestinationUnreachable]. Redirects are followed, so a destination
// that forwards to a healthy page counts as reachable.
func (p *destinationProber) Probe(ctx context.Context, destination string) error {
	resp, err := p.client.R().
		SetContext(ctx).
		Head(destination)
	if err != nil {
		p.logger.Warn().Err(err).Str("destination", destination).Msg("destination probe failed in transport")
		return fmt.Errorf("%w: %s", ErrDestinationUnreachable, err)
	}

	code := resp.StatusCode()
	if code < http.StatusOK || code >= http.StatusMultipleChoices {
		p.logger.Debug().Int("status", code).Str("destination", destination).Msg("destination probe rejected")
		return fmt.Errorf("%w: http %d", ErrDestinationUnreachable, code)
	}

	return nil
}
