// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/canonical/workspace-service/internal/logging"
)

func TestMonitor_IncInviteRedemptionMetric(t *testing.T) {
	m := NewMonitor("workspace-service-test", logging.NewNoopLogger())

	tags := map[string]string{"outcome": "success"}
	before := testutil.ToFloat64(m.redemptions.With(tags))

	if err := m.IncInviteRedemptionMetric(tags); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if after := testutil.ToFloat64(m.redemptions.With(tags)); after != before+1 {
		t.Errorf("expected counter to be %v, got %v", before+1, after)
	}
}

func TestNewMonitor_SharesRegisteredCollectors(t *testing.T) {
	first := NewMonitor("workspace-service-shared", logging.NewNoopLogger())
	second := NewMonitor("workspace-service-shared", logging.NewNoopLogger())

	if first.responseTime != second.responseTime {
		t.Errorf("expected the second monitor to reuse the registered histogram")
	}

	if err := second.SetResponseTimeMetric(map[string]string{"route": "GET/api/v0/status", "status": "200"}, 0.1); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := second.SetDependencyAvailability(map[string]string{"component": "db"}, 1); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestMonitor_Uninstantiated(t *testing.T) {
	m := new(Monitor)

	if err := m.SetResponseTimeMetric(nil, 1); err == nil {
		t.Errorf("expected error for missing histogram")
	}
	if err := m.IncInviteRedemptionMetric(nil); err == nil {
		t.Errorf("expected error for missing counter")
	}
}
