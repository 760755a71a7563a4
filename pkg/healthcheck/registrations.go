package healthcheck

import (
	"fmt"

	"github.com/koddi/healthcheck/pkg/check"
	"github.com/koddi/healthcheck/pkg/koddi"
)

// maxFailureDetails caps how many registration failures appear in the
// result details; the total is always reported in the message.
const maxFailureDetails = 5

// checkEntityRegistrations reports failed entity registrations for the
// advertiser. Any failure present is a warning with the first few error
// rows; only a request error fails the check.
func checkEntityRegistrations(cfg *RunConfig, s *Session) check.Result {
	var result check.Result

	url := cfg.consoleURL("/member_groups/%d/advertisers/%d/entity_registrations/failed/report",
		cfg.MemberGroupID, cfg.AdvertiserID)
	resp, err := cfg.api().PostJSON(url, s.IDToken, map[string]interface{}{
		"pagination": map[string]interface{}{"count": 50, "start": 0},
	})
	if err != nil {
		return result.Fail(koddi.TransportErrorMessage(err), err)
	}
	if !resp.Success() {
		return result.Failf("error %s", resp.ErrorMessage())
	}

	total := int(resp.Body.Get("result.total").Int())
	if total == 0 {
		result.Status = check.StatusPass
		result.Message = "no entity registration failures"
		return result
	}

	failures := resp.Body.Get("result.entity_registrations").Array()
	if len(failures) > maxFailureDetails {
		failures = failures[:maxFailureDetails]
	}

	result.Status = check.StatusWarn
	result.Message = fmt.Sprintf("%d registration failure(s) found, showing first %d", total, len(failures))
	for _, f := range failures {
		result.AddDetailf("[%s] %s", field(f, "error_code"), field(f, "error_message"))
	}
	return result
}
