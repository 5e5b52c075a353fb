package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-gate-endpoint launch-gate endpoint override URL
//	-gate-timeout launch-config fetch timeout (e.g., "10s")
//	-probe-timeout destination reachability-check timeout (e.g., "10s")
//	-redirect-url destination advertised by the gate service
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-rate-qps sustained per-client request rate before 429
//	-rate-burst burst capacity of the per-client rate limiter
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var gateEndpoint string
	var gateTimeout time.Duration
	var probeTimeout time.Duration
	var redirectURL string
	var requestTimeout time.Duration
	var rateQPS float64
	var rateBurst int

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&gateEndpoint, "gate-endpoint", "", "Launch-gate endpoint override")
	flag.DurationVar(&gateTimeout, "gate-timeout", 0, "Launch-config fetch timeout (e.g., 10s)")
	flag.DurationVar(&probeTimeout, "probe-timeout", 0, "Destination probe timeout (e.g., 10s)")
	flag.StringVar(&redirectURL, "redirect-url", "", "Destination advertised by the gate")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.Float64Var(&rateQPS, "rate-qps", 0, "Per-client request rate before 429 (0 disables)")
	flag.IntVar(&rateBurst, "rate-burst", 0, "Per-client rate limiter burst")

	flag.Parse()

	return &StructuredConfig{
		Gate: Gate{
			EndpointURL:    gateEndpoint,
			RequestTimeout: gateTimeout,
			ProbeTimeout:   probeTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RedirectURL:    redirectURL,
			RequestTimeout: requestTimeout,
			RateLimitQPS:   rateQPS,
			RateLimitBurst: rateBurst,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
