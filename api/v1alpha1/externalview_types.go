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

// ExternalViewSpec is the observed segment-to-instance mapping, written
// by the cluster controller as servers report actual segment state.
// Version is never consulted by the rebalancer; it is a pure progress
// signal, never a source of truth.
type ExternalViewSpec struct {
	// Assignment may contain extra segments/instances absent from
	// IdealState; those are ignored by the convergence checker.
	// +optional
	Assignment Assignment `json:"assignment,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:resource:scope=Cluster,shortName=ev
// +kubebuilder:printcolumn:name="Age",type=date,JSONPath=`.metadata.creationTimestamp`

// ExternalView is the cluster controller's observed view of a table's
// segment placement. It may not exist yet for a brand-new table.
type ExternalView struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec ExternalViewSpec `json:"spec,omitempty"`
}

// +kubebuilder:object:root=true

// ExternalViewList contains a list of ExternalView.
type ExternalViewList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []ExternalView `json:"items"`
}

func init() {
	SchemeBuilder.Register(&ExternalView{}, &ExternalViewList{})
}
