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

// Package planner computes the next intermediate IdealState assignment
// on the path from current to target, honoring a per-segment replica
// availability floor (spec.md §4.5). It is the generalization of the
// teacher's maxUnavailable/SelectNodesForUpdate budget arithmetic from
// "how many nodes may update at once" to "how many replicas must stay
// put per segment".
package planner

import (
	"fmt"

	rebalancev1alpha1 "tablemesh.io/rebalancer/api/v1alpha1"
	"tablemesh.io/rebalancer/internal/rebaltypes"
)

// EffectiveMinAvailableReplicas derives minAvailableReplicas from the
// configured floor per spec.md §4.5:
//
//   - numReplicas = min(|current_per_segment|, |target_per_segment|)
//   - minReplicasToKeepUpForNoDowntime >= 0: must be < numReplicas, else error
//   - negative: minAvailableReplicas = max(numReplicas + value, 0)
func EffectiveMinAvailableReplicas(currentReplicaCount, targetReplicaCount, minReplicasToKeepUpForNoDowntime int) (int, error) {
	numReplicas := currentReplicaCount
	if targetReplicaCount < numReplicas {
		numReplicas = targetReplicaCount
	}

	if minReplicasToKeepUpForNoDowntime >= 0 {
		if minReplicasToKeepUpForNoDowntime >= numReplicas {
			return 0, fmt.Errorf(
				"minReplicasToKeepUpForNoDowntime (%d) must be less than the number of replicas (%d)",
				minReplicasToKeepUpForNoDowntime, numReplicas)
		}
		return minReplicasToKeepUpForNoDowntime, nil
	}

	floor := numReplicas + minReplicasToKeepUpForNoDowntime
	if floor < 0 {
		floor = 0
	}
	return floor, nil
}

// GetNextAssignment computes the assignment that sits between current
// and target such that every segment keeps at least
// minAvailableReplicas of its currently available (ONLINE or CONSUMING)
// instances from current, as far as current has that many. Instances in
// other states never count toward the floor and are not kept by the
// top-up phase. Iteration
// order over every instance map is a stable ascending sort by instance
// id, so the result is a pure, deterministic function of its inputs
// (spec.md §4.5/§9, property P3).
func GetNextAssignment(current, target rebalancev1alpha1.Assignment, minAvailableReplicas int) rebalancev1alpha1.Assignment {
	next := make(rebalancev1alpha1.Assignment, len(target))

	for _, segment := range rebaltypes.SortedSegments(target) {
		next[segment] = nextSegmentAssignment(current[segment], target[segment], minAvailableReplicas)
	}

	return next
}

// nextSegmentAssignment implements the three-phase per-segment
// algorithm of spec.md §4.5.
func nextSegmentAssignment(current, target rebalancev1alpha1.InstanceStateMap, minAvailableReplicas int) rebalancev1alpha1.InstanceStateMap {
	next := make(rebalancev1alpha1.InstanceStateMap, len(target))
	available := 0

	// 1. Common-keep: instances present in both carry the target state,
	// so they progress their state machine (e.g. CONSUMING -> ONLINE).
	// An instance only counts toward the availability floor if it is
	// currently ONLINE or CONSUMING: a replica stuck in ERROR or OFFLINE
	// isn't actually serving, so it can't stand in for a live replica.
	for _, instance := range rebaltypes.SortedInstances(target) {
		if state, inCurrent := current[instance]; inCurrent {
			next[instance] = target[instance]
			if state.Available() {
				available++
			}
		}
	}

	// 2. Top-up with current: keep serving instances that aren't in the
	// target set yet, at their current state, until the replica floor
	// is met. Only instances actually available now can satisfy it.
	if available < minAvailableReplicas {
		for _, instance := range rebaltypes.SortedInstances(current) {
			if available >= minAvailableReplicas {
				break
			}
			if _, already := next[instance]; already {
				continue
			}
			state := current[instance]
			if !state.Available() {
				continue
			}
			next[instance] = state
			available++
		}
	}

	// 3. Fill to target size: bring in the remaining target instances at
	// their target state.
	if len(next) < len(target) {
		for _, instance := range rebaltypes.SortedInstances(target) {
			if len(next) >= len(target) {
				break
			}
			if _, already := next[instance]; already {
				continue
			}
			next[instance] = target[instance]
		}
	}

	return next
}
