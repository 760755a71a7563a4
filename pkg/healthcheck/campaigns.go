package healthcheck

import (
	"fmt"

	"github.com/koddi/healthcheck/pkg/check"
	"github.com/koddi/healthcheck/pkg/koddi"
)

// checkCampaigns pulls the campaigns report for the advertiser. Zero
// campaigns is a warning, not a failure: an advertiser can be set up
// correctly before any campaign is created.
func checkCampaigns(cfg *RunConfig, s *Session) check.Result {
	var result check.Result

	url := cfg.consoleURL("/member_groups/%d/advertisers/%d/campaigns_report",
		cfg.MemberGroupID, cfg.AdvertiserID)
	resp, err := cfg.api().PostJSON(url, s.IDToken, map[string]interface{}{
		"pagination": map[string]interface{}{"start": 0},
	})
	if err != nil {
		return result.Fail(koddi.TransportErrorMessage(err), err)
	}
	if !resp.Success() {
		return result.Failf("error %s", resp.ErrorMessage())
	}

	campaigns := resp.Body.Get("result.campaigns").Array()
	total := len(campaigns)
	if t := resp.Body.Get("result.total"); t.Exists() {
		total = int(t.Int())
	}

	if total == 0 {
		result.Status = check.StatusWarn
		result.Message = "zero campaigns found for this advertiser"
		return result
	}

	result.Status = check.StatusPass
	result.Message = fmt.Sprintf("found %d campaign(s)", total)
	for _, c := range campaigns {
		result.AddDetailf("%s: status=%s always_on=%s budget=%s/%s",
			field(c, "name"), field(c, "status"), field(c, "always_on"),
			field(c, "budget_type"), field(c, "budget_amount"))
	}
	return result
}
