// Package healthcheck runs the ordered Koddi implementation checks and
// collects one result per check.
package healthcheck

import "github.com/koddi/healthcheck/pkg/check"

// Definition describes one registered check: its identity, the check it
// depends on (empty for none), and the function that performs it.
type Definition struct {
	ID        string
	Label     string
	DependsOn string
	Run       func(cfg *RunConfig, s *Session) check.Result
}

// Registry returns the checks in execution order. The order is fixed:
// dependency gating assumes a check's prerequisite ran before it.
func Registry() []Definition {
	return []Definition{
		{ID: "auth", Label: "Authentication", Run: checkAuth},
		{ID: "advertiser", Label: "Advertiser Exists", DependsOn: "auth", Run: checkAdvertiser},
		{ID: "campaigns", Label: "Campaigns Report", DependsOn: "advertiser", Run: checkCampaigns},
		{ID: "registrations", Label: "Entity Registration Failures", DependsOn: "advertiser", Run: checkEntityRegistrations},
		{ID: "bidders_cache", Label: "Active Bidders Cache", DependsOn: "advertiser", Run: checkActiveBidders},
		{ID: "attributable_cache", Label: "Attributable Entities Cache", DependsOn: "advertiser", Run: checkAttributableEntities},
		{ID: "test_auction", Label: "Winning Ads (Test Auction)", Run: checkTestAuction},
	}
}
