package service

import (
	"net"
	"regexp"
	"strings"
)

var dottedQuad = regexp.MustCompile(`^\d+\.\d+\.\d+\.\d+$`)

// ExtractSubdomain returns the left-most label of host, lower-cased, when the
// host carries one. Hosts with two or fewer labels, localhost and IPv4
// addresses have no subdomain. A trailing port is ignored.
func ExtractSubdomain(host string) (string, bool) {
	host = stripPort(host)
	host = strings.TrimSuffix(host, ".")

	if host == "" || strings.EqualFold(host, "localhost") || dottedQuad.MatchString(host) {
		return "", false
	}
	// IPv6 literals never carry a subdomain.
	if strings.Contains(host, ":") {
		return "", false
	}

	parts := strings.Split(host, ".")
	if len(parts) <= 2 || parts[0] == "" {
		return "", false
	}
	return strings.ToLower(parts[0]), true
}

func stripPort(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		return strings.Trim(h, "[]")
	}
	return strings.Trim(host, "[]")
}
