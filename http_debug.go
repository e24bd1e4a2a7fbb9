package vidnavigator

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog/log"
)

// debugTransport dumps full HTTP request/response pairs for debugging
// client issues: malformed requests, authentication problems, unexpected
// response shapes.
//
// Activation:
//   - Set VIDNAVIGATOR_DEBUG=true (SDK-specific flag), or
//   - DEBUG=true (general debug flag, common in development workflows).
//
// Dumps include headers and bodies, so the API key and uploaded content
// end up in the logs. Keep it to development and staging.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if debugLoggingRequested() {
		if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
			log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
		}
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		if debugLoggingRequested() {
			log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		}
		return nil, err
	}

	if debugLoggingRequested() {
		if respDump, err := httputil.DumpResponse(resp, true); err == nil {
			log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
		}
	}
	return resp, nil
}

// debugLoggingRequested reports whether HTTP debug logging should be on.
// Both VIDNAVIGATOR_DEBUG=true and DEBUG=true enable it (case-sensitive).
func debugLoggingRequested() bool {
	return os.Getenv("VIDNAVIGATOR_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
