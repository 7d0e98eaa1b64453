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

// InstancePartitionsType distinguishes the partition-type namespace an
// InstancePartitions object was computed for.
// +kubebuilder:validation:Enum=OFFLINE;CONSUMING;COMPLETED
type InstancePartitionsType string

const (
	InstancePartitionsTypeOffline   InstancePartitionsType = "OFFLINE"
	InstancePartitionsTypeConsuming InstancePartitionsType = "CONSUMING"
	InstancePartitionsTypeCompleted InstancePartitionsType = "COMPLETED"
)

// InstancePartitionGroup is an ordered set of instances forming one
// replica group (or partition group) for a table/type pair.
type InstancePartitionGroup struct {
	// Key identifies the group, e.g. "0_0" for partition 0 replica group 0.
	Key string `json:"key"`

	// Instances is the ordered list of instance ids in this group.
	Instances []string `json:"instances"`
}

// InstancePartitionsSpec is the computed (or fetched/defaulted) mapping
// of instances into partition/replica groups used by segment-assignment
// strategies. It is opaque to the Driver beyond its Name/TableName/Type.
type InstancePartitionsSpec struct {
	// TableName is the table (with type suffix) this was computed for.
	TableName string `json:"tableName"`

	// Type is the partition-type namespace.
	Type InstancePartitionsType `json:"type"`

	// Groups is the ordered list of instance groups, insertion order
	// preserved (slice, never a bare map) so downstream strategies and
	// logs are reproducible.
	// +optional
	Groups []InstancePartitionGroup `json:"groups,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:resource:scope=Cluster,shortName=ip
// +kubebuilder:printcolumn:name="Table",type=string,JSONPath=`.spec.tableName`
// +kubebuilder:printcolumn:name="Type",type=string,JSONPath=`.spec.type`

// InstancePartitions is the persisted instance-assignment output for one
// (table, partition type) pair.
type InstancePartitions struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec InstancePartitionsSpec `json:"spec,omitempty"`
}

// +kubebuilder:object:root=true

// InstancePartitionsList contains a list of InstancePartitions.
type InstancePartitionsList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []InstancePartitions `json:"items"`
}

func init() {
	SchemeBuilder.Register(&InstancePartitions{}, &InstancePartitionsList{})
}

// InstancePartitionsName returns the canonical persisted object name for a
// (tableNameWithType, type) pair.
func InstancePartitionsName(tableNameWithType string, t InstancePartitionsType) string {
	return tableNameWithType + "_" + string(t)
}
