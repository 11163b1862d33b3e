package client

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog/log"
)

// debugTransport dumps full HTTP traffic for troubleshooting client
// issues. Dumps include auth headers and payloads, so enable it only in
// development environments.
//
// Activation: WithDebugLogging(true), or QUICKCOURT_DEBUG=true / DEBUG=true
// in the environment.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := dt.base
	if base == nil {
		base = http.DefaultTransport
	}

	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested reports whether HTTP debug dumps were requested
// via the environment.
func debugLoggingRequested() bool {
	return os.Getenv("QUICKCOURT_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
