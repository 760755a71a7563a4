package healthcheck

import (
	"github.com/koddi/healthcheck/pkg/check"
	"github.com/koddi/healthcheck/pkg/koddi"
)

// checkAuth logs into the Console API. On success it stores the obtained
// token in the session; every auth-dependent check reads it from there.
func checkAuth(cfg *RunConfig, s *Session) check.Result {
	var result check.Result

	resp, err := cfg.api().PostJSON(cfg.consoleURL("/session/login"), "", map[string]interface{}{
		"email":           cfg.Email,
		"password":        cfg.Password,
		"member_group_id": cfg.MemberGroupID,
	})
	if err != nil {
		return result.Fail(koddi.TransportErrorMessage(err), err)
	}
	if !resp.Success() {
		return result.Failf("login failed: %s", resp.ErrorMessage())
	}

	token := resp.Body.Get("result.token.id_token").String()
	if token == "" {
		return result.Failf("no id_token in response")
	}

	s.IDToken = token
	result.Status = check.StatusPass
	result.Message = "authenticated successfully"
	return result
}
