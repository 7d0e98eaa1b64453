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

// ReplicaGroupStrategy assigns whole InstancePartitions groups to
// segments round-robin, so every replica of a segment comes from the
// same pre-computed group. It draws each segment's replicas as a prefix
// of the group's Instances slice, so fault-domain diversity within a
// segment comes from the ordering the instance-assignment driver
// produced (resolver.orderByFaultDomain interleaves InstanceConfig.Spec.
// FaultDomain buckets) rather than from any reordering here.
type ReplicaGroupStrategy struct{}

// RebalanceTable implements Strategy.
func (ReplicaGroupStrategy) RebalanceTable(
	currentAssignment rebalancev1alpha1.Assignment,
	instancePartitionsMap map[rebalancev1alpha1.InstancePartitionsType]*rebalancev1alpha1.InstancePartitions,
	config Config,
) (rebalancev1alpha1.Assignment, error) {
	ip := instancePartitionsMap[rebalancev1alpha1.InstancePartitionsTypeOffline]
	if ip == nil {
		ip = instancePartitionsMap[rebalancev1alpha1.InstancePartitionsTypeCompleted]
	}
	if ip == nil || len(ip.Spec.Groups) == 0 {
		return nil, fmt.Errorf("no instance partition groups available for table %s", config.TableNameWithType)
	}

	for _, group := range ip.Spec.Groups {
		if len(group.Instances) < config.Replicas {
			return nil, fmt.Errorf("instance partition group %s has %d instances, fewer than the %d replicas required",
				group.Key, len(group.Instances), config.Replicas)
		}
	}

	target := make(rebalancev1alpha1.Assignment, len(currentAssignment))
	groupIdx := 0
	for _, segment := range rebaltypes.SortedSegments(currentAssignment) {
		group := ip.Spec.Groups[groupIdx%len(ip.Spec.Groups)]
		states := make(rebalancev1alpha1.InstanceStateMap, config.Replicas)
		for i := 0; i < config.Replicas; i++ {
			states[group.Instances[i]] = rebalancev1alpha1.SegmentStateOnline
		}
		target[segment] = states
		groupIdx++
	}

	return target, nil
}
