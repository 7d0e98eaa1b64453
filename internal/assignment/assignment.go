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

// Package assignment defines the Segment Assignment Strategy interface
// (spec.md §4.3) and a factory selecting an implementation by
// (TableType, strategy name) — the "tagged interface with
// implementations selected by a factory" design note of spec.md §9.
package assignment

import (
	"fmt"

	rebalancev1alpha1 "tablemesh.io/rebalancer/api/v1alpha1"
)

// Config carries the inputs a Strategy needs beyond the assignment maps
// themselves.
type Config struct {
	TableNameWithType string
	Replicas          int
	IncludeConsuming  bool
}

// Strategy computes a target assignment. Implementations must be pure
// functions of their inputs: same currentAssignment, instancePartitions
// and config must always produce the same targetAssignment (spec.md
// §4.3's "pure function of its inputs" contract).
type Strategy interface {
	RebalanceTable(
		currentAssignment rebalancev1alpha1.Assignment,
		instancePartitionsMap map[rebalancev1alpha1.InstancePartitionsType]*rebalancev1alpha1.InstancePartitions,
		config Config,
	) (rebalancev1alpha1.Assignment, error)
}

// Factory selects a Strategy by table type and strategy name.
type Factory struct {
	strategies map[key]Strategy
}

type key struct {
	tableType rebalancev1alpha1.TableType
	name      string
}

// NewFactory returns a Factory preloaded with the built-in strategies:
// "offline" for OFFLINE tables, and "balanced"/"replica-group" for both
// OFFLINE and REALTIME tables. Callers may Register additional strategies.
func NewFactory() *Factory {
	f := &Factory{strategies: make(map[key]Strategy)}
	f.Register(rebalancev1alpha1.TableTypeOffline, "offline", &OfflineStrategy{})
	f.Register(rebalancev1alpha1.TableTypeRealtime, "balanced", &BalancedStrategy{})
	f.Register(rebalancev1alpha1.TableTypeOffline, "balanced", &BalancedStrategy{})
	f.Register(rebalancev1alpha1.TableTypeRealtime, "replica-group", &ReplicaGroupStrategy{})
	f.Register(rebalancev1alpha1.TableTypeOffline, "replica-group", &ReplicaGroupStrategy{})
	return f
}

// Register installs a Strategy for a (tableType, name) pair.
func (f *Factory) Register(tableType rebalancev1alpha1.TableType, name string, s Strategy) {
	f.strategies[key{tableType, name}] = s
}

// Get returns the configured Strategy, defaulting to "balanced" when
// name is empty.
func (f *Factory) Get(tableType rebalancev1alpha1.TableType, name string) (Strategy, error) {
	if name == "" {
		name = "balanced"
	}
	s, ok := f.strategies[key{tableType, name}]
	if !ok {
		return nil, fmt.Errorf("no segment assignment strategy registered for table type %s, name %q", tableType, name)
	}
	return s, nil
}

// instances flattens an InstancePartitions object's groups into a
// single ordered instance list, preserving group and within-group
// order so strategies are deterministic.
func instances(ip *rebalancev1alpha1.InstancePartitions) []string {
	if ip == nil {
		return nil
	}
	var out []string
	for _, group := range ip.Spec.Groups {
		out = append(out, group.Instances...)
	}
	return out
}

// unionInstances returns the deduplicated union of instances across all
// entries of an instancePartitionsMap, in deterministic iteration order
// (partition types in the order given by order, then group order within
// each).
func unionInstances(m map[rebalancev1alpha1.InstancePartitionsType]*rebalancev1alpha1.InstancePartitions, order []rebalancev1alpha1.InstancePartitionsType) []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range order {
		for _, instance := range instances(m[t]) {
			if seen[instance] {
				continue
			}
			seen[instance] = true
			out = append(out, instance)
		}
	}
	return out
}
