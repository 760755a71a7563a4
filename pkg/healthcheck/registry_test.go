package healthcheck

import "testing"

func TestRegistry_OrderAndDependencies(t *testing.T) {
	want := []struct {
		id        string
		dependsOn string
	}{
		{"auth", ""},
		{"advertiser", "auth"},
		{"campaigns", "advertiser"},
		{"registrations", "advertiser"},
		{"bidders_cache", "advertiser"},
		{"attributable_cache", "advertiser"},
		{"test_auction", ""},
	}

	defs := Registry()
	if len(defs) != len(want) {
		t.Fatalf("Registry() length = %d, want %d", len(defs), len(want))
	}

	seen := make(map[string]bool)
	for i, def := range defs {
		if def.ID != want[i].id {
			t.Errorf("Registry()[%d].ID = %q, want %q", i, def.ID, want[i].id)
		}
		if def.DependsOn != want[i].dependsOn {
			t.Errorf("Registry()[%d].DependsOn = %q, want %q", i, def.DependsOn, want[i].dependsOn)
		}
		if def.Label == "" {
			t.Errorf("Registry()[%d] has empty label", i)
		}
		if def.Run == nil {
			t.Errorf("Registry()[%d] has nil Run", i)
		}
		// A dependency must precede its dependent; gating reads prior results.
		if def.DependsOn != "" && !seen[def.DependsOn] {
			t.Errorf("Registry()[%d] depends on %q which does not precede it", i, def.DependsOn)
		}
		seen[def.ID] = true
	}
}

func TestConsoleURL_TrimsTrailingSlash(t *testing.T) {
	tests := []struct {
		baseURL string
		want    string
	}{
		{"http://api.test", "http://api.test/session/login"},
		{"http://api.test/", "http://api.test/session/login"},
		{"https://koddi.io/console/v1", "https://koddi.io/console/v1/session/login"},
		{"https://koddi.io/console/v1/", "https://koddi.io/console/v1/session/login"},
	}

	for _, tt := range tests {
		cfg := &RunConfig{BaseURL: tt.baseURL}
		if got := cfg.consoleURL("/session/login"); got != tt.want {
			t.Errorf("consoleURL(%q) = %q, want %q", tt.baseURL, got, tt.want)
		}
	}
}
