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

// Package rebaltypes defines the in-memory request/response and
// well-formedness types shared by every rebalancer component: the
// caller-facing RebalanceConfig/RebalanceResult pair and Assignment
// validation rules from spec.md §3.
package rebaltypes

import (
	"errors"
	"fmt"
	"sort"

	rebalancev1alpha1 "tablemesh.io/rebalancer/api/v1alpha1"
)

// ErrHeterogeneousReplicas is returned by Validate when an assignment's
// segments do not all carry the same replica count (spec.md §9's open
// question on heterogeneous replica counts, resolved here by rejecting
// such inputs at validation — see DESIGN.md).
var ErrHeterogeneousReplicas = errors.New("assignment has segments with differing replica counts")

// RebalanceConfig is the set of options controlling one rebalance call.
type RebalanceConfig struct {
	// DryRun computes only; no store writes.
	DryRun bool

	// ReassignInstances recomputes and persists instance partitions.
	ReassignInstances bool

	// IncludeConsuming considers CONSUMING replicas for realtime tables.
	IncludeConsuming bool

	// Downtime replaces IdealState in one step with no availability guard.
	Downtime bool

	// MinReplicasToKeepUpForNoDowntime is the availability floor. See
	// planner.EffectiveMinAvailableReplicas for its derivation.
	MinReplicasToKeepUpForNoDowntime int

	// BestEfforts degrades failures (ERROR states, EV timeout) to
	// warnings and continues.
	BestEfforts bool
}

// DefaultRebalanceConfig returns the documented defaults from spec.md §3.
func DefaultRebalanceConfig() RebalanceConfig {
	return RebalanceConfig{MinReplicasToKeepUpForNoDowntime: 1}
}

// RebalanceStatus is the terminal status of a rebalance call.
type RebalanceStatus string

const (
	StatusDone   RebalanceStatus = "DONE"
	StatusNoOp   RebalanceStatus = "NO_OP"
	StatusFailed RebalanceStatus = "FAILED"
)

// RebalanceResult is returned by the Driver's Rebalance entry point.
type RebalanceResult struct {
	Status                RebalanceStatus
	Message               string
	InstancePartitionsMap map[rebalancev1alpha1.InstancePartitionsType]*rebalancev1alpha1.InstancePartitions
	TargetAssignment      rebalancev1alpha1.Assignment
}

// Equal reports whether two assignments are identical: same segments,
// same instances per segment, same states.
func Equal(a, b rebalancev1alpha1.Assignment) bool {
	if len(a) != len(b) {
		return false
	}
	for segment, states := range a {
		otherStates, ok := b[segment]
		if !ok || len(states) != len(otherStates) {
			return false
		}
		for instance, state := range states {
			if otherStates[instance] != state {
				return false
			}
		}
	}
	return true
}

// Validate checks the well-formedness invariant of spec.md §3: every
// segment in the assignment must carry the same replica count (the size
// of its InstanceStateMap). An empty assignment is trivially valid.
func Validate(a rebalancev1alpha1.Assignment) error {
	replicaCount := -1
	for segment, states := range a {
		if replicaCount == -1 {
			replicaCount = len(states)
			continue
		}
		if len(states) != replicaCount {
			return fmt.Errorf("segment %q has %d replicas, expected %d: %w",
				segment, len(states), replicaCount, ErrHeterogeneousReplicas)
		}
	}
	return nil
}

// SortedInstances returns the instance ids of m in ascending order —
// the stable iteration order required by the planner and convergence
// checker (spec.md §4.5/§9: "use ordered containers... rather than
// relying on hash iteration").
func SortedInstances(m rebalancev1alpha1.InstanceStateMap) []string {
	out := make([]string, 0, len(m))
	for instance := range m {
		out = append(out, instance)
	}
	sort.Strings(out)
	return out
}

// SortedSegments returns the segment names of a in ascending order.
func SortedSegments(a rebalancev1alpha1.Assignment) []string {
	out := make([]string, 0, len(a))
	for segment := range a {
		out = append(out, segment)
	}
	sort.Strings(out)
	return out
}
