/*
Copyright 2026.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package rebalance

import (
	"context"
	"errors"
	"testing"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	rebalancev1alpha1 "tablemesh.io/rebalancer/api/v1alpha1"
	"tablemesh.io/rebalancer/internal/rebaltypes"
	"tablemesh.io/rebalancer/internal/testutil"
)

func newFakeGateway() *testutil.FakeGateway {
	return testutil.NewFakeGateway()
}

func enabledInstance(name string) rebalancev1alpha1.InstanceConfig {
	return testutil.EnabledInstance(name)
}

// TestRebalance_NoOpOnBalancedTable verifies scenario 1 of spec.md §8:
// a table whose current assignment already matches what the strategy
// would produce returns NO_OP and performs no writes.
func TestRebalance_NoOpOnBalancedTable(t *testing.T) {
	gw := newFakeGateway()
	gw.Instances = []rebalancev1alpha1.InstanceConfig{enabledInstance("i1"), enabledInstance("i2")}
	gw.PutIdealState(&rebalancev1alpha1.IdealState{
		ObjectMeta: metav1.ObjectMeta{Name: "t_OFFLINE"},
		Spec: rebalancev1alpha1.IdealStateSpec{
			Enabled:  true,
			Replicas: 2,
			Assignment: rebalancev1alpha1.Assignment{
				"s0": rebalancev1alpha1.InstanceStateMap{"i1": rebalancev1alpha1.SegmentStateOnline, "i2": rebalancev1alpha1.SegmentStateOnline},
			},
		},
	})

	d := NewDriver(gw, nil, nil)
	table := rebalancev1alpha1.TableConfigSpec{TableNameWithType: "t_OFFLINE", TableType: rebalancev1alpha1.TableTypeOffline, Replicas: 2}

	result, err := d.Rebalance(context.Background(), table, rebaltypes.RebalanceConfig{MinReplicasToKeepUpForNoDowntime: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != rebaltypes.StatusNoOp {
		t.Errorf("Status = %v, want NO_OP", result.Status)
	}
	if gw.CASCalls != 0 {
		t.Errorf("casCalls = %d, want 0 (no writes on a no-op)", gw.CASCalls)
	}
}

// TestRebalance_DryRunDoesNotMutateStore verifies scenario 2: dry-run
// computes a target without any CAS writes.
func TestRebalance_DryRunDoesNotMutateStore(t *testing.T) {
	gw := newFakeGateway()
	gw.Instances = []rebalancev1alpha1.InstanceConfig{enabledInstance("i1"), enabledInstance("i2"), enabledInstance("i3")}
	gw.PutIdealState(&rebalancev1alpha1.IdealState{
		ObjectMeta: metav1.ObjectMeta{Name: "t_OFFLINE"},
		Spec: rebalancev1alpha1.IdealStateSpec{
			Enabled:  true,
			Replicas: 2,
			Assignment: rebalancev1alpha1.Assignment{
				"s0": rebalancev1alpha1.InstanceStateMap{"i1": rebalancev1alpha1.SegmentStateOnline, "i3": rebalancev1alpha1.SegmentStateOnline},
			},
		},
	})

	d := NewDriver(gw, nil, nil)
	table := rebalancev1alpha1.TableConfigSpec{TableNameWithType: "t_OFFLINE", TableType: rebalancev1alpha1.TableTypeOffline, Replicas: 2}

	result, err := d.Rebalance(context.Background(), table, rebaltypes.RebalanceConfig{DryRun: true, MinReplicasToKeepUpForNoDowntime: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != rebaltypes.StatusDone {
		t.Errorf("Status = %v, want DONE", result.Status)
	}
	if gw.CASCalls != 0 {
		t.Errorf("casCalls = %d, want 0 under dry-run", gw.CASCalls)
	}
}

// TestRebalance_DisabledTableWithoutDowntimeFails verifies scenario 6:
// a disabled table rejected without downtime leaves the store untouched.
func TestRebalance_DisabledTableWithoutDowntimeFails(t *testing.T) {
	gw := newFakeGateway()
	gw.PutIdealState(&rebalancev1alpha1.IdealState{
		ObjectMeta: metav1.ObjectMeta{Name: "t_OFFLINE"},
		Spec:       rebalancev1alpha1.IdealStateSpec{Enabled: false},
	})

	d := NewDriver(gw, nil, nil)
	table := rebalancev1alpha1.TableConfigSpec{TableNameWithType: "t_OFFLINE", TableType: rebalancev1alpha1.TableTypeOffline, Replicas: 1}

	result, err := d.Rebalance(context.Background(), table, rebaltypes.RebalanceConfig{Downtime: false})
	if !errors.Is(err, ErrDisabledTableNoDowntime) {
		t.Fatalf("error = %v, want ErrDisabledTableNoDowntime", err)
	}
	if result.Status != rebaltypes.StatusFailed {
		t.Errorf("Status = %v, want FAILED", result.Status)
	}
	if result.Message != "Cannot rebalance disabled table without downtime" {
		t.Errorf("Message = %q, want the literal scenario message", result.Message)
	}
	if gw.CASCalls != 0 {
		t.Errorf("casCalls = %d, want 0 on rejection", gw.CASCalls)
	}
}

// TestRebalance_HighLevelConsumerRealtimeRejected verifies high-level
// consumer realtime tables are rejected at validation before any read.
func TestRebalance_HighLevelConsumerRealtimeRejected(t *testing.T) {
	gw := newFakeGateway()
	d := NewDriver(gw, nil, nil)
	table := rebalancev1alpha1.TableConfigSpec{
		TableNameWithType:    "t_REALTIME",
		TableType:            rebalancev1alpha1.TableTypeRealtime,
		UseHighLevelConsumer: true,
	}

	_, err := d.Rebalance(context.Background(), table, rebaltypes.RebalanceConfig{})
	if !errors.Is(err, ErrHighLevelConsumerRealtime) {
		t.Fatalf("error = %v, want ErrHighLevelConsumerRealtime", err)
	}
}

// TestRebalance_DowntimeLoopRetriesOnConflict verifies the downtime path
// re-reads and re-plans after losing a CAS race, then commits.
func TestRebalance_DowntimeLoopRetriesOnConflict(t *testing.T) {
	gw := newFakeGateway()
	gw.Instances = []rebalancev1alpha1.InstanceConfig{enabledInstance("i1"), enabledInstance("i2")}
	gw.PutIdealState(&rebalancev1alpha1.IdealState{
		ObjectMeta: metav1.ObjectMeta{Name: "t_OFFLINE"},
		Spec: rebalancev1alpha1.IdealStateSpec{
			Enabled:  true,
			Replicas: 2,
			Assignment: rebalancev1alpha1.Assignment{
				"s0": rebalancev1alpha1.InstanceStateMap{"i1": rebalancev1alpha1.SegmentStateOnline},
			},
		},
	})

	gw.FailCASTimes = 1

	d := NewDriver(gw, nil, nil)
	table := rebalancev1alpha1.TableConfigSpec{TableNameWithType: "t_OFFLINE", TableType: rebalancev1alpha1.TableTypeOffline, Replicas: 2}

	result, err := d.Rebalance(context.Background(), table, rebaltypes.RebalanceConfig{Downtime: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != rebaltypes.StatusDone {
		t.Errorf("Status = %v, want DONE", result.Status)
	}
	if gw.CASCalls != 2 {
		t.Errorf("casCalls = %d, want 2 (one conflict, one successful retry)", gw.CASCalls)
	}
}

// TestRebalance_MissingIdealStateFails verifies a table with no
// IdealState on record fails validation rather than panicking.
func TestRebalance_MissingIdealStateFails(t *testing.T) {
	gw := newFakeGateway()
	d := NewDriver(gw, nil, nil)
	table := rebalancev1alpha1.TableConfigSpec{TableNameWithType: "ghost_OFFLINE", TableType: rebalancev1alpha1.TableTypeOffline}

	result, err := d.Rebalance(context.Background(), table, rebaltypes.RebalanceConfig{})
	if err == nil {
		t.Fatal("expected an error for a missing ideal state")
	}
	if result.Status != rebaltypes.StatusFailed {
		t.Errorf("Status = %v, want FAILED", result.Status)
	}
}
