package healthcheck

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/koddi/healthcheck/pkg/check"
	"github.com/koddi/healthcheck/pkg/koddi"
)

// checkAdvertiser verifies the configured advertiser exists under the
// member group and reports its basic attributes.
func checkAdvertiser(cfg *RunConfig, s *Session) check.Result {
	var result check.Result

	url := cfg.consoleURL("/member_groups/%d/advertisers/%d", cfg.MemberGroupID, cfg.AdvertiserID)
	resp, err := cfg.api().GetJSON(url, s.IDToken)
	if err != nil {
		return result.Fail(koddi.TransportErrorMessage(err), err)
	}
	if !resp.Success() {
		return result.Failf("error %s", resp.ErrorMessage())
	}

	adv := resp.Body.Get("result")
	result.Status = check.StatusPass
	result.Message = fmt.Sprintf("found %s: status=%s entities=%s currency=%s",
		field(adv, "name"), field(adv, "status"), field(adv, "entity_count"), field(adv, "currency_code"))
	return result
}

// field returns the string form of a key in a parsed result, or "N/A"
// when the key is absent.
func field(data gjson.Result, key string) string {
	v := data.Get(key)
	if !v.Exists() {
		return "N/A"
	}
	return v.String()
}
