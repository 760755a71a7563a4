package healthcheck

import (
	"fmt"
	"net/http"

	"github.com/koddi/healthcheck/pkg/check"
	"github.com/koddi/healthcheck/pkg/koddi"
)

// checkTestAuction runs an unauthenticated test auction against the
// client's auction engine with an empty bidders list. Zero returned
// listings still passes; only an unreachable or non-200 engine fails.
func checkTestAuction(cfg *RunConfig, _ *Session) check.Result {
	var result check.Result

	body := map[string]interface{}{
		"client_name":     cfg.ClientName,
		"site_id":         cfg.SiteID,
		"slots_available": 1,
		"max_requested":   1,
		"user":            map[string]interface{}{"guid": "healthcheck-test-user"},
		"bidders":         []interface{}{},
	}
	if cfg.ExperienceName != "" {
		body["experience_name"] = cfg.ExperienceName
	}

	resp, err := cfg.api().PostJSON(koddi.AuctionURL(cfg.ClientName), "", body)
	if err != nil {
		return result.Failf("%s: cannot reach %s.koddi.io", koddi.TransportErrorMessage(err), cfg.ClientName)
	}
	if resp.StatusCode != http.StatusOK {
		return result.Failf("HTTP %d: auction engine may be misconfigured or client %q is not provisioned",
			resp.StatusCode, cfg.ClientName)
	}

	count := len(resp.Body.Get("sponsored_listings").Array())
	result.Status = check.StatusPass
	if count == 0 {
		result.Message = "auction responded OK: 0 listings (expected with empty bidders)"
	} else {
		result.Message = fmt.Sprintf("auction responded OK: %d sponsored listing(s) returned", count)
	}
	return result
}
