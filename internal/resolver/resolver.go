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

// Package resolver implements the Instance Partitions Resolver of
// spec.md §4.2: for each partition type relevant to a table, it either
// recomputes and persists a fresh InstancePartitions object (when
// reassignment is requested and the table's policy allows it), falls
// back to a default grouping while clearing any stale custom one, or
// simply fetches what is already on record. Grounded on the teacher's
// selector.go list-then-filter pattern and ensureRMC's idempotent
// create-or-reuse logic.
package resolver

import (
	"context"
	"fmt"
	"sort"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	rebalancev1alpha1 "tablemesh.io/rebalancer/api/v1alpha1"
	"tablemesh.io/rebalancer/internal/gateway"
)

// Resolver resolves the InstancePartitions a rebalance needs, one
// partition type at a time.
type Resolver struct {
	gw gateway.Gateway
}

// New returns a Resolver backed by gw.
func New(gw gateway.Gateway) *Resolver {
	return &Resolver{gw: gw}
}

// Resolve implements the pseudocode of spec.md §4.2 for a single
// partition type.
func (r *Resolver) Resolve(
	ctx context.Context,
	table rebalancev1alpha1.TableConfigSpec,
	partitionType rebalancev1alpha1.InstancePartitionsType,
	reassignInstances bool,
	dryRun bool,
) (*rebalancev1alpha1.InstancePartitions, error) {
	name := rebalancev1alpha1.InstancePartitionsName(table.TableNameWithType, partitionType)

	if !reassignInstances {
		return r.fetchOrComputeDefault(ctx, table, partitionType, name)
	}

	policy, allowed := table.PolicyFor(partitionType)
	if allowed && policy.Allows() {
		instances, err := r.gw.ReadInstanceConfigs(ctx)
		if err != nil {
			return nil, fmt.Errorf("reading instance configs: %w", err)
		}

		ip := assignByPool(name, table.TableNameWithType, partitionType, instances)
		if !dryRun {
			if err := r.gw.PersistInstancePartitions(ctx, ip); err != nil {
				return nil, fmt.Errorf("persisting instance partitions %s: %w", name, err)
			}
		}
		return ip, nil
	}

	ip, err := r.computeDefault(ctx, table, partitionType, name)
	if err != nil {
		return nil, err
	}
	if !dryRun {
		if err := r.gw.RemoveInstancePartitions(ctx, name); err != nil {
			return nil, fmt.Errorf("removing stale instance partitions %s: %w", name, err)
		}
	}
	return ip, nil
}

func (r *Resolver) fetchOrComputeDefault(
	ctx context.Context,
	table rebalancev1alpha1.TableConfigSpec,
	partitionType rebalancev1alpha1.InstancePartitionsType,
	name string,
) (*rebalancev1alpha1.InstancePartitions, error) {
	existing, err := r.gw.FetchInstancePartitions(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("fetching instance partitions %s: %w", name, err)
	}
	if existing != nil {
		return existing, nil
	}
	return r.computeDefault(ctx, table, partitionType, name)
}

func (r *Resolver) computeDefault(
	ctx context.Context,
	table rebalancev1alpha1.TableConfigSpec,
	partitionType rebalancev1alpha1.InstancePartitionsType,
	name string,
) (*rebalancev1alpha1.InstancePartitions, error) {
	instances, err := r.gw.ReadInstanceConfigs(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading instance configs: %w", err)
	}
	return computeDefaultInstancePartitions(name, table.TableNameWithType, partitionType, instances), nil
}

// computeDefaultInstancePartitions groups every enabled instance into a
// single unnamed-pool group. It is the instance-assignment driver's
// fallback shape for tables with no custom assignment policy.
func computeDefaultInstancePartitions(
	name, tableNameWithType string,
	partitionType rebalancev1alpha1.InstancePartitionsType,
	instances []rebalancev1alpha1.InstanceConfig,
) *rebalancev1alpha1.InstancePartitions {
	var enabled []rebalancev1alpha1.InstanceConfig
	for _, inst := range instances {
		if inst.Spec.Enabled {
			enabled = append(enabled, inst)
		}
	}

	return &rebalancev1alpha1.InstancePartitions{
		ObjectMeta: metav1.ObjectMeta{Name: name},
		Spec: rebalancev1alpha1.InstancePartitionsSpec{
			TableName: tableNameWithType,
			Type:      partitionType,
			Groups: []rebalancev1alpha1.InstancePartitionGroup{
				{Key: "0", Instances: orderByFaultDomain(enabled)},
			},
		},
	}
}

// assignByPool is the instance-assignment driver named in spec.md §4.2:
// it groups enabled instances by their configured pool, producing one
// InstancePartitions group per pool so a downstream Segment Assignment
// Strategy (e.g. replica-group) can draw whole-pool replica sets.
func assignByPool(
	name, tableNameWithType string,
	partitionType rebalancev1alpha1.InstancePartitionsType,
	instances []rebalancev1alpha1.InstanceConfig,
) *rebalancev1alpha1.InstancePartitions {
	byPool := make(map[string][]rebalancev1alpha1.InstanceConfig)
	for _, inst := range instances {
		if !inst.Spec.Enabled {
			continue
		}
		byPool[inst.Spec.Pool] = append(byPool[inst.Spec.Pool], inst)
	}

	pools := make([]string, 0, len(byPool))
	for pool := range byPool {
		pools = append(pools, pool)
	}
	sort.Strings(pools)

	groups := make([]rebalancev1alpha1.InstancePartitionGroup, 0, len(pools))
	for _, pool := range pools {
		groups = append(groups, rebalancev1alpha1.InstancePartitionGroup{Key: pool, Instances: orderByFaultDomain(byPool[pool])})
	}

	return &rebalancev1alpha1.InstancePartitions{
		ObjectMeta: metav1.ObjectMeta{Name: name},
		Spec: rebalancev1alpha1.InstancePartitionsSpec{
			TableName: tableNameWithType,
			Type:      partitionType,
			Groups:    groups,
		},
	}
}

// orderByFaultDomain arranges instances so that consecutive entries come
// from distinct InstanceConfig.Spec.FaultDomain values whenever possible:
// it buckets by fault domain, sorts each bucket by name, and round-robins
// across buckets. ReplicaGroupStrategy draws a segment's replicas as a
// prefix of one group's Instances slice, so this ordering is what keeps
// those replicas spread across fault domains (instances with no
// FaultDomain set form their own bucket and diversify only against each
// other).
func orderByFaultDomain(instances []rebalancev1alpha1.InstanceConfig) []string {
	byDomain := make(map[string][]string)
	for _, inst := range instances {
		byDomain[inst.Spec.FaultDomain] = append(byDomain[inst.Spec.FaultDomain], inst.Name)
	}

	domains := make([]string, 0, len(byDomain))
	for domain := range byDomain {
		domains = append(domains, domain)
	}
	sort.Strings(domains)
	for _, domain := range domains {
		sort.Strings(byDomain[domain])
	}

	var out []string
	for i := 0; ; i++ {
		added := false
		for _, domain := range domains {
			if i < len(byDomain[domain]) {
				out = append(out, byDomain[domain][i])
				added = true
			}
		}
		if !added {
			break
		}
	}
	return out
}
