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

// SegmentState is the replica state of a single segment replica as
// reported in IdealState or ExternalView.
// +kubebuilder:validation:Enum=ONLINE;CONSUMING;OFFLINE;ERROR;DROPPED
type SegmentState string

const (
	// SegmentStateOnline means the replica is fully serving queries.
	SegmentStateOnline SegmentState = "ONLINE"
	// SegmentStateConsuming means a realtime replica is actively consuming
	// the stream but may already serve partial queries.
	SegmentStateConsuming SegmentState = "CONSUMING"
	// SegmentStateOffline is a deliberate no-op placement: ignored whenever
	// ExternalView is compared against IdealState.
	SegmentStateOffline SegmentState = "OFFLINE"
	// SegmentStateError means the server reported a failure applying the
	// segment; fatal unless the caller opted into best-efforts.
	SegmentStateError SegmentState = "ERROR"
	// SegmentStateDropped means the replica has been removed from the
	// instance.
	SegmentStateDropped SegmentState = "DROPPED"
)

// Available reports whether s counts toward the replica-availability
// invariant: only ONLINE and CONSUMING are available.
func (s SegmentState) Available() bool {
	return s == SegmentStateOnline || s == SegmentStateConsuming
}

// InstanceStateMap maps an instance id to the state a segment has on
// that instance.
type InstanceStateMap map[string]SegmentState

// DeepCopy returns a deep copy of m.
func (m InstanceStateMap) DeepCopy() InstanceStateMap {
	if m == nil {
		return nil
	}
	out := make(InstanceStateMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Assignment maps a segment name to the states it holds across
// instances. All segments in a well-formed Assignment share the same
// replica count (len of InstanceStateMap) — see rebaltypes.Validate.
type Assignment map[string]InstanceStateMap

// DeepCopy returns a deep copy of a.
func (a Assignment) DeepCopy() Assignment {
	if a == nil {
		return nil
	}
	out := make(Assignment, len(a))
	for segment, states := range a {
		out[segment] = states.DeepCopy()
	}
	return out
}
