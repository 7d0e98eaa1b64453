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

// IdealStateSpec is the declarative desired mapping of segments to
// instance states for a table. It is the object the rebalancer mutates.
type IdealStateSpec struct {
	// Enabled mirrors the owning table's enabled flag. A disabled table
	// may only be rebalanced with downtime=true.
	// +kubebuilder:default=true
	Enabled bool `json:"enabled"`

	// NumPartitions is the number of segments/partitions in the table.
	NumPartitions int `json:"numPartitions"`

	// Replicas is the configured replication factor for the table.
	Replicas int `json:"replicas"`

	// Assignment maps segment name to its per-instance replica states.
	// +optional
	Assignment Assignment `json:"assignment,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:resource:scope=Cluster,shortName=is
// +kubebuilder:printcolumn:name="Enabled",type=boolean,JSONPath=`.spec.enabled`
// +kubebuilder:printcolumn:name="Segments",type=integer,JSONPath=`.spec.numPartitions`
// +kubebuilder:printcolumn:name="Age",type=date,JSONPath=`.metadata.creationTimestamp`

// IdealState is the authoritative desired segment-to-instance mapping
// for a table. Its metadata.resourceVersion is the optimistic-concurrency
// version used by casIdealState.
type IdealState struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec IdealStateSpec `json:"spec,omitempty"`
}

// +kubebuilder:object:root=true

// IdealStateList contains a list of IdealState.
type IdealStateList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []IdealState `json:"items"`
}

func init() {
	SchemeBuilder.Register(&IdealState{}, &IdealStateList{})
}
