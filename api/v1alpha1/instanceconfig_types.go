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

// InstanceConfigSpec declares a server instance available for segment
// placement: its pool/tag membership and fault domain.
type InstanceConfigSpec struct {
	// Enabled marks the instance eligible for new placements. Disabled
	// instances are still listed (callers decide what to do with them).
	// +kubebuilder:default=true
	Enabled bool `json:"enabled"`

	// Tags are free-form labels (e.g. "DefaultTenant_OFFLINE"). The
	// resolver does not read them; it groups instances by Pool.
	// +optional
	Tags []string `json:"tags,omitempty"`

	// Pool is the logical pool this instance belongs to.
	// +optional
	Pool string `json:"pool,omitempty"`

	// FaultDomain groups instances that share a failure boundary (rack,
	// zone, ...). The resolver interleaves fault domains when ordering an
	// InstancePartitions group's instances, so a prefix of that group
	// spans as many distinct fault domains as possible.
	// +optional
	FaultDomain string `json:"faultDomain,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:resource:scope=Cluster,shortName=ic
// +kubebuilder:printcolumn:name="Pool",type=string,JSONPath=`.spec.pool`
// +kubebuilder:printcolumn:name="FaultDomain",type=string,JSONPath=`.spec.faultDomain`

// InstanceConfig represents one server instance eligible to host
// segment replicas.
type InstanceConfig struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec InstanceConfigSpec `json:"spec,omitempty"`
}

// +kubebuilder:object:root=true

// InstanceConfigList contains a list of InstanceConfig.
type InstanceConfigList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []InstanceConfig `json:"items"`
}

func init() {
	SchemeBuilder.Register(&InstanceConfig{}, &InstanceConfigList{})
}
