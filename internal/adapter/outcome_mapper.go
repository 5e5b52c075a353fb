package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-day-keeper/models"
	"github.com/go-resty/resty/v2"
)

// Messages carried verbatim inside failed outcomes. The failure view shows
// them to the user as-is.
const (
	msgInvalidConfigURL    = "Invalid configuration URL"
	msgInvalidHTTPResponse = "Invalid HTTP response"
)

// classifyLaunchResponse turns a completed round trip into a
// [models.FetchOutcome]. The caller has already handled transport errors;
// everything here works off the response alone.
func classifyLaunchResponse(resp *resty.Response) models.FetchOutcome {
	if resp == nil || resp.RawResponse == nil || resp.StatusCode() == 0 {
		return models.NewFailedOutcome(models.NewErrorDetail(
			models.ErrorDomainTransport, models.NonHTTPCode, msgInvalidHTTPResponse,
		))
	}

	code := resp.StatusCode()

	if code == http.StatusTooManyRequests {
		return models.NewRateLimitedOutcome()
	}

	if code < http.StatusOK || code >= http.StatusMultipleChoices {
		return models.NewFailedOutcome(models.NewErrorDetail(
			models.ErrorDomainHTTP, code, fmt.Sprintf("unexpected HTTP status %d", code),
		))
	}

	var launchCfg models.LaunchConfig
	if err := json.Unmarshal(resp.Body(), &launchCfg); err != nil {
		return models.NewFailedOutcome(models.NewErrorDetail(
			models.ErrorDomainResponse, models.NonHTTPCode,
			fmt.Sprintf("failed to decode launch config: %v", err),
		))
	}

	return models.NewCompletedOutcome(launchCfg.URL)
}
