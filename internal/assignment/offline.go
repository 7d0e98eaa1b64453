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

package assignment

import (
	"fmt"

	rebalancev1alpha1 "tablemesh.io/rebalancer/api/v1alpha1"
	"tablemesh.io/rebalancer/internal/rebaltypes"
)

var offlineOrder = []rebalancev1alpha1.InstancePartitionsType{rebalancev1alpha1.InstancePartitionsTypeOffline}

// OfflineStrategy round-robins every existing segment across the
// OFFLINE instance pool and marks every assigned replica ONLINE: there
// is no consuming/completed distinction for OFFLINE tables.
type OfflineStrategy struct{}

// RebalanceTable implements Strategy.
func (OfflineStrategy) RebalanceTable(
	currentAssignment rebalancev1alpha1.Assignment,
	instancePartitionsMap map[rebalancev1alpha1.InstancePartitionsType]*rebalancev1alpha1.InstancePartitions,
	config Config,
) (rebalancev1alpha1.Assignment, error) {
	pool := unionInstances(instancePartitionsMap, offlineOrder)
	if len(pool) == 0 {
		return nil, fmt.Errorf("no OFFLINE instances available for table %s", config.TableNameWithType)
	}
	if config.Replicas > len(pool) {
		return nil, fmt.Errorf("table %s requires %d replicas but only %d instances are available",
			config.TableNameWithType, config.Replicas, len(pool))
	}

	return roundRobinAssign(currentAssignment, pool, config.Replicas, rebalancev1alpha1.SegmentStateOnline), nil
}

// roundRobinAssign assigns config.Replicas distinct instances to each
// segment of currentAssignment, advancing a shared cursor across the
// pool so that load spreads evenly. Deterministic: segments are
// iterated in sorted order and the pool order is whatever the caller
// passed in (itself deterministic — see unionInstances).
func roundRobinAssign(current rebalancev1alpha1.Assignment, pool []string, replicas int, state rebalancev1alpha1.SegmentState) rebalancev1alpha1.Assignment {
	target := make(rebalancev1alpha1.Assignment, len(current))
	cursor := 0

	for _, segment := range rebaltypes.SortedSegments(current) {
		states := make(rebalancev1alpha1.InstanceStateMap, replicas)
		for i := 0; i < replicas && i < len(pool); i++ {
			instance := pool[cursor%len(pool)]
			states[instance] = state
			cursor++
		}
		target[segment] = states
	}

	return target
}
