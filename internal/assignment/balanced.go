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
)

var realtimeCompletedOnlyOrder = []rebalancev1alpha1.InstancePartitionsType{
	rebalancev1alpha1.InstancePartitionsTypeCompleted,
}

var realtimeOrder = []rebalancev1alpha1.InstancePartitionsType{
	rebalancev1alpha1.InstancePartitionsTypeCompleted,
	rebalancev1alpha1.InstancePartitionsTypeConsuming,
}

// BalancedStrategy round-robins every existing segment across the
// COMPLETED instance pool (or the OFFLINE pool, for OFFLINE tables),
// marking every assigned replica ONLINE. For REALTIME tables, the
// CONSUMING pool is folded into the union only when config.IncludeConsuming
// is set: without it, segments are balanced across fully-loaded replicas
// only. It never creates or drops segments: it only redistributes the
// segments already present in currentAssignment, matching the real
// rebalancer's division of labor (segment creation is a
// table-management concern upstream of this driver).
type BalancedStrategy struct{}

// RebalanceTable implements Strategy.
func (BalancedStrategy) RebalanceTable(
	currentAssignment rebalancev1alpha1.Assignment,
	instancePartitionsMap map[rebalancev1alpha1.InstancePartitionsType]*rebalancev1alpha1.InstancePartitions,
	config Config,
) (rebalancev1alpha1.Assignment, error) {
	order := realtimeCompletedOnlyOrder
	if config.IncludeConsuming {
		order = realtimeOrder
	}
	if instancePartitionsMap[rebalancev1alpha1.InstancePartitionsTypeOffline] != nil {
		order = offlineOrder
	}

	pool := unionInstances(instancePartitionsMap, order)
	if len(pool) == 0 {
		return nil, fmt.Errorf("no instances available to rebalance table %s", config.TableNameWithType)
	}
	if config.Replicas > len(pool) {
		return nil, fmt.Errorf("table %s requires %d replicas but only %d instances are available",
			config.TableNameWithType, config.Replicas, len(pool))
	}

	return roundRobinAssign(currentAssignment, pool, config.Replicas, rebalancev1alpha1.SegmentStateOnline), nil
}
