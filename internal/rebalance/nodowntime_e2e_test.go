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
	"testing"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	rebalancev1alpha1 "tablemesh.io/rebalancer/api/v1alpha1"
	"tablemesh.io/rebalancer/internal/rebaltypes"
)

// TestRebalance_NoDowntimeLoopConvergesAcrossMultipleSteps drives the
// full no-downtime path end to end: a real Driver, planner and waiter
// against a gateway whose ExternalView mirrors every IdealState write,
// so the loop must iterate (instead of converging in a single CAS) to
// replace one segment's replicas without ever dropping below the
// availability floor.
func TestRebalance_NoDowntimeLoopConvergesAcrossMultipleSteps(t *testing.T) {
	gw := newFakeGateway()
	gw.AutoConverge = true
	gw.Instances = []rebalancev1alpha1.InstanceConfig{
		enabledInstance("iA"), enabledInstance("iB"), enabledInstance("iC"), enabledInstance("iD"),
	}

	online := rebalancev1alpha1.SegmentStateOnline
	gw.PutIdealState(&rebalancev1alpha1.IdealState{
		ObjectMeta: metav1.ObjectMeta{Name: "t_OFFLINE"},
		Spec: rebalancev1alpha1.IdealStateSpec{
			Enabled: true,
			Assignment: rebalancev1alpha1.Assignment{
				// s1 already matches what BalancedStrategy will compute.
				"s1": rebalancev1alpha1.InstanceStateMap{"iA": online, "iB": online},
				// s2 must move entirely from {iA,iB} to {iC,iD}, which the
				// floor of 1 forces across two CAS-write iterations.
				"s2": rebalancev1alpha1.InstanceStateMap{"iA": online, "iB": online},
			},
		},
	})

	table := rebalancev1alpha1.TableConfigSpec{
		TableNameWithType: "t_OFFLINE",
		TableType:         rebalancev1alpha1.TableTypeOffline,
		Replicas:          2,
	}

	d := NewDriver(gw, nil, nil)
	result, err := d.Rebalance(context.Background(), table, rebaltypes.RebalanceConfig{
		MinReplicasToKeepUpForNoDowntime: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != rebaltypes.StatusDone {
		t.Fatalf("Status = %v, want StatusDone: %s", result.Status, result.Message)
	}

	want := rebalancev1alpha1.Assignment{
		"s1": rebalancev1alpha1.InstanceStateMap{"iA": online, "iB": online},
		"s2": rebalancev1alpha1.InstanceStateMap{"iC": online, "iD": online},
	}
	if !rebaltypes.Equal(result.TargetAssignment, want) {
		t.Fatalf("TargetAssignment = %+v, want %+v", result.TargetAssignment, want)
	}

	committed, err := gw.ReadIdealState(context.Background(), "t_OFFLINE")
	if err != nil {
		t.Fatalf("unexpected error reading back ideal state: %v", err)
	}
	if !rebaltypes.Equal(committed.Spec.Assignment, want) {
		t.Fatalf("committed assignment = %+v, want %+v", committed.Spec.Assignment, want)
	}

	if gw.CASCalls < 2 {
		t.Errorf("CASCalls = %d, want at least 2 (the floor must force more than one step)", gw.CASCalls)
	}
}

// TestRebalance_NoDowntimeLoopRespectsAvailabilityFloor verifies that
// no write observed along the way drops the moving segment s2 below
// its configured floor of available replicas.
func TestRebalance_NoDowntimeLoopRespectsAvailabilityFloor(t *testing.T) {
	gw := newFakeGateway()
	gw.AutoConverge = true
	gw.Instances = []rebalancev1alpha1.InstanceConfig{
		enabledInstance("iA"), enabledInstance("iB"), enabledInstance("iC"), enabledInstance("iD"),
	}

	online := rebalancev1alpha1.SegmentStateOnline
	gw.PutIdealState(&rebalancev1alpha1.IdealState{
		ObjectMeta: metav1.ObjectMeta{Name: "t_OFFLINE"},
		Spec: rebalancev1alpha1.IdealStateSpec{
			Enabled: true,
			Assignment: rebalancev1alpha1.Assignment{
				"s1": rebalancev1alpha1.InstanceStateMap{"iA": online, "iB": online},
				"s2": rebalancev1alpha1.InstanceStateMap{"iA": online, "iB": online},
			},
		},
	})

	table := rebalancev1alpha1.TableConfigSpec{
		TableNameWithType: "t_OFFLINE",
		TableType:         rebalancev1alpha1.TableTypeOffline,
		Replicas:          2,
	}

	d := NewDriver(gw, nil, nil)
	if _, err := d.Rebalance(context.Background(), table, rebaltypes.RebalanceConfig{
		MinReplicasToKeepUpForNoDowntime: 1,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, is := range gw.History() {
		states := is.Spec.Assignment["s2"]
		available := 0
		for _, state := range states {
			if state.Available() {
				available++
			}
		}
		if available < 1 {
			t.Errorf("segment s2 dropped below the availability floor in an intermediate write: %+v", states)
		}
	}
}
