package healthcheck

import (
	"fmt"

	"github.com/koddi/healthcheck/pkg/check"
	"github.com/koddi/healthcheck/pkg/koddi"
)

// checkActiveBidders verifies the active bidders cache is populated for
// the member group. An empty cache means no ad group can bid, which is a
// warning rather than a hard failure.
func checkActiveBidders(cfg *RunConfig, s *Session) check.Result {
	var result check.Result

	url := cfg.consoleURL("/member_groups/%d/active_bidders", cfg.MemberGroupID)
	resp, err := cfg.api().GetJSON(url, s.IDToken)
	if err != nil {
		return result.Fail(koddi.TransportErrorMessage(err), err)
	}
	if !resp.Success() {
		return result.Failf("error %s", resp.ErrorMessage())
	}

	bidders := resp.Body.Get("result.active_bidders").Array()
	if len(bidders) == 0 {
		result.Status = check.StatusWarn
		result.Message = "active bidders list is empty: no ad groups are active"
		return result
	}

	result.Status = check.StatusPass
	result.Message = fmt.Sprintf("%d active bidder(s) in cache", len(bidders))
	return result
}

// checkAttributableEntities verifies the attributable entities cache is
// populated. Empty means conversions will not attribute.
func checkAttributableEntities(cfg *RunConfig, s *Session) check.Result {
	var result check.Result

	url := cfg.consoleURL("/member_groups/%d/attributable_entities", cfg.MemberGroupID)
	resp, err := cfg.api().GetJSON(url, s.IDToken)
	if err != nil {
		return result.Fail(koddi.TransportErrorMessage(err), err)
	}
	if !resp.Success() {
		return result.Failf("error %s", resp.ErrorMessage())
	}

	entities := resp.Body.Get("result.attributable_entities").Array()
	if len(entities) == 0 {
		result.Status = check.StatusWarn
		result.Message = "no attributable entities: conversions will not attribute"
		return result
	}

	result.Status = check.StatusPass
	result.Message = fmt.Sprintf("%d attributable entit(ies) in cache", len(entities))
	return result
}
