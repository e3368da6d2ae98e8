package config

import "testing"

func TestGetSchedulerConfigDefaults(t *testing.T) {
	// No config.yaml in the package directory, so defaults apply.
	cfg := GetSchedulerConfig()

	if cfg.Port != 9095 {
		t.Errorf("port %d, want 9095", cfg.Port)
	}
	if cfg.RoundRobinTimeQuantum != 2 {
		t.Errorf("round robin time quantum %d, want 2", cfg.RoundRobinTimeQuantum)
	}
}
