package locator

import (
	"net"
	"net/http"
	"strings"
)

// HeaderSet is a read-only view on request headers. http.Header
// satisfies it; lookups are case-insensitive there.
type HeaderSet interface {
	Get(string) string
}

// Headers are checked in this order. REMOTE_ADDR here is a header, not
// an address of the peer.
var forwardingHeaders = []string{
	"X-Forwarded-For",
	"Proxy-Client-IP",
	"WL-Proxy-Client-IP",
	"HTTP_X_FORWARDED_FOR",
	"HTTP_X_FORWARDED",
	"HTTP_X_CLUSTER_CLIENT_IP",
	"HTTP_CLIENT_IP",
	"HTTP_FORWARDED_FOR",
	"HTTP_FORWARDED",
	"HTTP_VIA",
	"REMOTE_ADDR",
	"X-Real-IP",
}

// ResolveClientIP returns the first forwarding header value which is
// neither empty nor "unknown". If there is none, remoteAddr is returned
// as is, even if it is empty. Values are not parsed or normalized.
func ResolveClientIP(headers HeaderSet, remoteAddr string) string {
	for _, name := range forwardingHeaders {
		if value := headers.Get(name); value != "" && !strings.EqualFold(value, "unknown") {
			return value
		}
	}

	return remoteAddr
}

// ClientIP resolves client address of the request. Transport-level
// fallback is a host part of RemoteAddr.
func ClientIP(req *http.Request) string {
	remoteAddr := req.RemoteAddr
	if host, _, err := net.SplitHostPort(remoteAddr); err == nil {
		remoteAddr = host
	}

	return ResolveClientIP(req.Header, remoteAddr)
}
