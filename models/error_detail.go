package models

import "fmt"

// ErrorDomain identifies which stage of launch-config resolution
// produced an [ErrorDetail].
type ErrorDomain string

const (
	// ErrorDomainConfiguration marks failures caused by the configured
	// gate endpoint itself (e.g. an unparsable URL). No request is made.
	ErrorDomainConfiguration ErrorDomain = "configuration"

	// ErrorDomainTransport marks failures below the HTTP layer:
	// DNS resolution, refused connections, timeouts, or responses
	// that arrive without status metadata.
	ErrorDomainTransport ErrorDomain = "transport"

	// ErrorDomainHTTP marks responses that completed with a
	// non-successful, non-rate-limit status code.
	ErrorDomainHTTP ErrorDomain = "http"

	// ErrorDomainResponse marks successful responses whose body
	// could not be decoded as a launch-config document.
	ErrorDomainResponse ErrorDomain = "response"
)

// NonHTTPCode is the code recorded on an [ErrorDetail] when no HTTP
// status is available for the failure.
const NonHTTPCode = -1

// ErrorDetail describes a single launch-config failure.
//
// All fields are comparable, so two details are equal exactly when
// their Domain, Code and Message are equal; callers may compare
// details with ==.
type ErrorDetail struct {
	// Domain is the resolution stage the failure belongs to.
	Domain ErrorDomain `json:"domain"`

	// Code is the HTTP status code when the failure carries one,
	// otherwise [NonHTTPCode].
	Code int `json:"code"`

	// Message is a human-readable description of the failure,
	// suitable for direct display.
	Message string `json:"message"`
}

// NewErrorDetail constructs an [ErrorDetail] from its three parts.
func NewErrorDetail(domain ErrorDomain, code int, message string) ErrorDetail {
	return ErrorDetail{
		Domain:  domain,
		Code:    code,
		Message: message,
	}
}

// Error implements the error interface.
func (e ErrorDetail) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Domain, e.Code, e.Message)
}
