package config

import (
	"errors"
	"net/url"
	"strings"
)

// ServerURL is the address of a mcpsqlited server.
type ServerURL struct {
	Protocol string
	Host     string
	Port     string
}

// String returns the base URL of the server.
func (s ServerURL) String() string {
	host := s.Host
	if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}
	if s.Port == "" {
		return s.Protocol + "://" + host
	}
	return s.Protocol + "://" + host + ":" + s.Port
}

// Endpoint returns the URL of the tool-call endpoint.
func (s ServerURL) Endpoint() string {
	return s.String() + "/mcp"
}

// ParseServerURL parses the given server URL. Only http and https are
// accepted; any path, query or fragment is ignored.
func ParseServerURL(serverURL string) (ServerURL, error) {
	parsedURL, err := url.Parse(serverURL)
	if err != nil {
		return ServerURL{}, err
	}

	protocol := parsedURL.Scheme
	if protocol != "http" && protocol != "https" {
		return ServerURL{}, errors.New("invalid protocol, must be http or https")
	}

	host := parsedURL.Hostname()
	if host == "" {
		return ServerURL{}, errors.New("missing host")
	}

	return ServerURL{
		Protocol: protocol,
		Host:     host,
		Port:     parsedURL.Port(),
	}, nil
}
