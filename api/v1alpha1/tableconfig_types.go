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

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// TableType distinguishes OFFLINE and REALTIME tables.
// +kubebuilder:validation:Enum=OFFLINE;REALTIME
type TableType string

const (
	TableTypeOffline  TableType = "OFFLINE"
	TableTypeRealtime TableType = "REALTIME"
)

// InstanceAssignmentPolicy declares, for one partition type, whether a
// custom instance-assignment algorithm is configured (vs. falling back
// to a computed default).
type InstanceAssignmentPolicy struct {
	// Type is the partition type this policy applies to.
	Type InstancePartitionsType `json:"type"`

	// StrategyName selects the instance-assignment driver implementation
	// (e.g. "pool", "fault-domain"). Empty means "use the default".
	// +optional
	StrategyName string `json:"strategyName,omitempty"`
}

// Allows reports whether this policy configures a custom assignment
// (as opposed to the computed default).
func (p InstanceAssignmentPolicy) Allows() bool {
	return p.StrategyName != ""
}

// TableConfigSpec is the declarative, non-IdealState configuration of a
// table: its type, consumer model and instance-assignment policies.
type TableConfigSpec struct {
	// TableNameWithType is the fully qualified table name, e.g.
	// "myTable_OFFLINE".
	TableNameWithType string `json:"tableNameWithType"`

	// TableType is OFFLINE or REALTIME.
	TableType TableType `json:"tableType"`

	// UseHighLevelConsumer marks a REALTIME table as using the legacy
	// high-level consumer model, which cannot be rebalanced.
	// +optional
	UseHighLevelConsumer bool `json:"useHighLevelConsumer,omitempty"`

	// SegmentAssignmentStrategyName selects the Segment Assignment
	// Strategy implementation (factory-keyed by TableType + this name).
	// +optional
	SegmentAssignmentStrategyName string `json:"segmentAssignmentStrategyName,omitempty"`

	// Replicas is the configured replication factor.
	Replicas int `json:"replicas"`

	// InstanceAssignmentPolicies lists, in deterministic (insertion)
	// order, the policy for each relevant partition type.
	// +optional
	InstanceAssignmentPolicies []InstanceAssignmentPolicy `json:"instanceAssignmentPolicies,omitempty"`
}

// RelevantPartitionTypes returns the partition types this table must
// resolve InstancePartitions for, in deterministic order: OFFLINE tables
// use {OFFLINE}; REALTIME tables use {CONSUMING, COMPLETED}.
func (s *TableConfigSpec) RelevantPartitionTypes() []InstancePartitionsType {
	if s.TableType == TableTypeOffline {
		return []InstancePartitionsType{InstancePartitionsTypeOffline}
	}
	return []InstancePartitionsType{InstancePartitionsTypeConsuming, InstancePartitionsTypeCompleted}
}

// PolicyFor returns the configured policy for a partition type, and
// whether one was found.
func (s *TableConfigSpec) PolicyFor(t InstancePartitionsType) (InstanceAssignmentPolicy, bool) {
	for _, p := range s.InstanceAssignmentPolicies {
		if p.Type == t {
			return p, true
		}
	}
	return InstanceAssignmentPolicy{}, false
}

// +kubebuilder:object:root=true
// +kubebuilder:resource:scope=Cluster,shortName=tc
// +kubebuilder:printcolumn:name="Type",type=string,JSONPath=`.spec.tableType`
// +kubebuilder:printcolumn:name="Replicas",type=integer,JSONPath=`.spec.replicas`

// TableConfig is the declarative, non-placement configuration of a
// table consumed by the rebalancer.
type TableConfig struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec TableConfigSpec `json:"spec,omitempty"`
}

// +kubebuilder:object:root=true

// TableConfigList contains a list of TableConfig.
type TableConfigList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []TableConfig `json:"items"`
}

func init() {
	SchemeBuilder.Register(&TableConfig{}, &TableConfigList{})
}
