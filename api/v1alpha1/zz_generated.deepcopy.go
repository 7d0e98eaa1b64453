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
	runtime "k8s.io/apimachinery/pkg/runtime"
)

// DeepCopyInto copies all properties into out.
func (in *IdealStateSpec) DeepCopyInto(out *IdealStateSpec) {
	*out = *in
	out.Assignment = in.Assignment.DeepCopy()
}

// DeepCopy returns a deep copy.
func (in *IdealStateSpec) DeepCopy() *IdealStateSpec {
	if in == nil {
		return nil
	}
	out := new(IdealStateSpec)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto copies all properties into out.
func (in *IdealState) DeepCopyInto(out *IdealState) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	in.Spec.DeepCopyInto(&out.Spec)
}

// DeepCopy returns a deep copy.
func (in *IdealState) DeepCopy() *IdealState {
	if in == nil {
		return nil
	}
	out := new(IdealState)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyObject implements runtime.Object.
func (in *IdealState) DeepCopyObject() runtime.Object {
	if c := in.DeepCopy(); c != nil {
		return c
	}
	return nil
}

// DeepCopyInto copies all properties into out.
func (in *IdealStateList) DeepCopyInto(out *IdealStateList) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ListMeta.DeepCopyInto(&out.ListMeta)
	if in.Items != nil {
		out.Items = make([]IdealState, len(in.Items))
		for i := range in.Items {
			in.Items[i].DeepCopyInto(&out.Items[i])
		}
	}
}

// DeepCopy returns a deep copy.
func (in *IdealStateList) DeepCopy() *IdealStateList {
	if in == nil {
		return nil
	}
	out := new(IdealStateList)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyObject implements runtime.Object.
func (in *IdealStateList) DeepCopyObject() runtime.Object {
	if c := in.DeepCopy(); c != nil {
		return c
	}
	return nil
}

// DeepCopyInto copies all properties into out.
func (in *ExternalViewSpec) DeepCopyInto(out *ExternalViewSpec) {
	*out = *in
	out.Assignment = in.Assignment.DeepCopy()
}

// DeepCopy returns a deep copy.
func (in *ExternalViewSpec) DeepCopy() *ExternalViewSpec {
	if in == nil {
		return nil
	}
	out := new(ExternalViewSpec)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto copies all properties into out.
func (in *ExternalView) DeepCopyInto(out *ExternalView) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	in.Spec.DeepCopyInto(&out.Spec)
}

// DeepCopy returns a deep copy.
func (in *ExternalView) DeepCopy() *ExternalView {
	if in == nil {
		return nil
	}
	out := new(ExternalView)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyObject implements runtime.Object.
func (in *ExternalView) DeepCopyObject() runtime.Object {
	if c := in.DeepCopy(); c != nil {
		return c
	}
	return nil
}

// DeepCopyInto copies all properties into out.
func (in *ExternalViewList) DeepCopyInto(out *ExternalViewList) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ListMeta.DeepCopyInto(&out.ListMeta)
	if in.Items != nil {
		out.Items = make([]ExternalView, len(in.Items))
		for i := range in.Items {
			in.Items[i].DeepCopyInto(&out.Items[i])
		}
	}
}

// DeepCopy returns a deep copy.
func (in *ExternalViewList) DeepCopy() *ExternalViewList {
	if in == nil {
		return nil
	}
	out := new(ExternalViewList)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyObject implements runtime.Object.
func (in *ExternalViewList) DeepCopyObject() runtime.Object {
	if c := in.DeepCopy(); c != nil {
		return c
	}
	return nil
}

// DeepCopyInto copies all properties into out.
func (in *InstancePartitionGroup) DeepCopyInto(out *InstancePartitionGroup) {
	*out = *in
	if in.Instances != nil {
		out.Instances = make([]string, len(in.Instances))
		copy(out.Instances, in.Instances)
	}
}

// DeepCopyInto copies all properties into out.
func (in *InstancePartitionsSpec) DeepCopyInto(out *InstancePartitionsSpec) {
	*out = *in
	if in.Groups != nil {
		out.Groups = make([]InstancePartitionGroup, len(in.Groups))
		for i := range in.Groups {
			in.Groups[i].DeepCopyInto(&out.Groups[i])
		}
	}
}

// DeepCopy returns a deep copy.
func (in *InstancePartitionsSpec) DeepCopy() *InstancePartitionsSpec {
	if in == nil {
		return nil
	}
	out := new(InstancePartitionsSpec)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto copies all properties into out.
func (in *InstancePartitions) DeepCopyInto(out *InstancePartitions) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	in.Spec.DeepCopyInto(&out.Spec)
}

// DeepCopy returns a deep copy.
func (in *InstancePartitions) DeepCopy() *InstancePartitions {
	if in == nil {
		return nil
	}
	out := new(InstancePartitions)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyObject implements runtime.Object.
func (in *InstancePartitions) DeepCopyObject() runtime.Object {
	if c := in.DeepCopy(); c != nil {
		return c
	}
	return nil
}

// DeepCopyInto copies all properties into out.
func (in *InstancePartitionsList) DeepCopyInto(out *InstancePartitionsList) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ListMeta.DeepCopyInto(&out.ListMeta)
	if in.Items != nil {
		out.Items = make([]InstancePartitions, len(in.Items))
		for i := range in.Items {
			in.Items[i].DeepCopyInto(&out.Items[i])
		}
	}
}

// DeepCopy returns a deep copy.
func (in *InstancePartitionsList) DeepCopy() *InstancePartitionsList {
	if in == nil {
		return nil
	}
	out := new(InstancePartitionsList)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyObject implements runtime.Object.
func (in *InstancePartitionsList) DeepCopyObject() runtime.Object {
	if c := in.DeepCopy(); c != nil {
		return c
	}
	return nil
}

// DeepCopyInto copies all properties into out.
func (in *InstanceConfigSpec) DeepCopyInto(out *InstanceConfigSpec) {
	*out = *in
	if in.Tags != nil {
		out.Tags = make([]string, len(in.Tags))
		copy(out.Tags, in.Tags)
	}
}

// DeepCopy returns a deep copy.
func (in *InstanceConfigSpec) DeepCopy() *InstanceConfigSpec {
	if in == nil {
		return nil
	}
	out := new(InstanceConfigSpec)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto copies all properties into out.
func (in *InstanceConfig) DeepCopyInto(out *InstanceConfig) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	in.Spec.DeepCopyInto(&out.Spec)
}

// DeepCopy returns a deep copy.
func (in *InstanceConfig) DeepCopy() *InstanceConfig {
	if in == nil {
		return nil
	}
	out := new(InstanceConfig)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyObject implements runtime.Object.
func (in *InstanceConfig) DeepCopyObject() runtime.Object {
	if c := in.DeepCopy(); c != nil {
		return c
	}
	return nil
}

// DeepCopyInto copies all properties into out.
func (in *InstanceConfigList) DeepCopyInto(out *InstanceConfigList) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ListMeta.DeepCopyInto(&out.ListMeta)
	if in.Items != nil {
		out.Items = make([]InstanceConfig, len(in.Items))
		for i := range in.Items {
			in.Items[i].DeepCopyInto(&out.Items[i])
		}
	}
}

// DeepCopy returns a deep copy.
func (in *InstanceConfigList) DeepCopy() *InstanceConfigList {
	if in == nil {
		return nil
	}
	out := new(InstanceConfigList)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyObject implements runtime.Object.
func (in *InstanceConfigList) DeepCopyObject() runtime.Object {
	if c := in.DeepCopy(); c != nil {
		return c
	}
	return nil
}

// DeepCopyInto copies all properties into out.
func (in *TableConfigSpec) DeepCopyInto(out *TableConfigSpec) {
	*out = *in
	if in.InstanceAssignmentPolicies != nil {
		out.InstanceAssignmentPolicies = make([]InstanceAssignmentPolicy, len(in.InstanceAssignmentPolicies))
		copy(out.InstanceAssignmentPolicies, in.InstanceAssignmentPolicies)
	}
}

// DeepCopy returns a deep copy.
func (in *TableConfigSpec) DeepCopy() *TableConfigSpec {
	if in == nil {
		return nil
	}
	out := new(TableConfigSpec)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto copies all properties into out.
func (in *TableConfig) DeepCopyInto(out *TableConfig) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	in.Spec.DeepCopyInto(&out.Spec)
}

// DeepCopy returns a deep copy.
func (in *TableConfig) DeepCopy() *TableConfig {
	if in == nil {
		return nil
	}
	out := new(TableConfig)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyObject implements runtime.Object.
func (in *TableConfig) DeepCopyObject() runtime.Object {
	if c := in.DeepCopy(); c != nil {
		return c
	}
	return nil
}

// DeepCopyInto copies all properties into out.
func (in *TableConfigList) DeepCopyInto(out *TableConfigList) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ListMeta.DeepCopyInto(&out.ListMeta)
	if in.Items != nil {
		out.Items = make([]TableConfig, len(in.Items))
		for i := range in.Items {
			in.Items[i].DeepCopyInto(&out.Items[i])
		}
	}
}

// DeepCopy returns a deep copy.
func (in *TableConfigList) DeepCopy() *TableConfigList {
	if in == nil {
		return nil
	}
	out := new(TableConfigList)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyObject implements runtime.Object.
func (in *TableConfigList) DeepCopyObject() runtime.Object {
	if c := in.DeepCopy(); c != nil {
		return c
	}
	return nil
}
