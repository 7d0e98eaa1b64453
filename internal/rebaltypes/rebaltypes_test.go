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

package rebaltypes

import (
	"errors"
	"reflect"
	"testing"

	rebalancev1alpha1 "tablemesh.io/rebalancer/api/v1alpha1"
)

func TestEqual_IdenticalAssignments(t *testing.T) {
	a := rebalancev1alpha1.Assignment{"s1": rebalancev1alpha1.InstanceStateMap{"i1": rebalancev1alpha1.SegmentStateOnline}}
	b := rebalancev1alpha1.Assignment{"s1": rebalancev1alpha1.InstanceStateMap{"i1": rebalancev1alpha1.SegmentStateOnline}}

	if !Equal(a, b) {
		t.Errorf("Equal = false, want true")
	}
}

func TestEqual_DifferentSegmentCount(t *testing.T) {
	a := rebalancev1alpha1.Assignment{"s1": rebalancev1alpha1.InstanceStateMap{"i1": rebalancev1alpha1.SegmentStateOnline}}
	b := rebalancev1alpha1.Assignment{}

	if Equal(a, b) {
		t.Errorf("Equal = true, want false")
	}
}

func TestEqual_DifferentState(t *testing.T) {
	a := rebalancev1alpha1.Assignment{"s1": rebalancev1alpha1.InstanceStateMap{"i1": rebalancev1alpha1.SegmentStateOnline}}
	b := rebalancev1alpha1.Assignment{"s1": rebalancev1alpha1.InstanceStateMap{"i1": rebalancev1alpha1.SegmentStateConsuming}}

	if Equal(a, b) {
		t.Errorf("Equal = true, want false")
	}
}

func TestEqual_MissingInstance(t *testing.T) {
	a := rebalancev1alpha1.Assignment{"s1": rebalancev1alpha1.InstanceStateMap{"i1": rebalancev1alpha1.SegmentStateOnline, "i2": rebalancev1alpha1.SegmentStateOnline}}
	b := rebalancev1alpha1.Assignment{"s1": rebalancev1alpha1.InstanceStateMap{"i1": rebalancev1alpha1.SegmentStateOnline}}

	if Equal(a, b) {
		t.Errorf("Equal = true, want false")
	}
}

func TestValidate_UniformReplicaCount(t *testing.T) {
	a := rebalancev1alpha1.Assignment{
		"s1": rebalancev1alpha1.InstanceStateMap{"i1": rebalancev1alpha1.SegmentStateOnline, "i2": rebalancev1alpha1.SegmentStateOnline},
		"s2": rebalancev1alpha1.InstanceStateMap{"i3": rebalancev1alpha1.SegmentStateOnline, "i4": rebalancev1alpha1.SegmentStateOnline},
	}

	if err := Validate(a); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_HeterogeneousReplicaCount(t *testing.T) {
	a := rebalancev1alpha1.Assignment{
		"s1": rebalancev1alpha1.InstanceStateMap{"i1": rebalancev1alpha1.SegmentStateOnline},
		"s2": rebalancev1alpha1.InstanceStateMap{"i2": rebalancev1alpha1.SegmentStateOnline, "i3": rebalancev1alpha1.SegmentStateOnline},
	}

	err := Validate(a)
	if !errors.Is(err, ErrHeterogeneousReplicas) {
		t.Fatalf("Validate() error = %v, want wrapping ErrHeterogeneousReplicas", err)
	}
}

func TestValidate_EmptyAssignment(t *testing.T) {
	if err := Validate(rebalancev1alpha1.Assignment{}); err != nil {
		t.Errorf("unexpected error for empty assignment: %v", err)
	}
}

func TestSortedInstances_AscendingOrder(t *testing.T) {
	m := rebalancev1alpha1.InstanceStateMap{"z": rebalancev1alpha1.SegmentStateOnline, "a": rebalancev1alpha1.SegmentStateOnline, "m": rebalancev1alpha1.SegmentStateOnline}

	got := SortedInstances(m)
	want := []string{"a", "m", "z"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SortedInstances() = %v, want %v", got, want)
	}
}

func TestSortedSegments_AscendingOrder(t *testing.T) {
	a := rebalancev1alpha1.Assignment{
		"s2":  rebalancev1alpha1.InstanceStateMap{},
		"s10": rebalancev1alpha1.InstanceStateMap{},
		"s1":  rebalancev1alpha1.InstanceStateMap{},
	}

	got := SortedSegments(a)
	want := []string{"s1", "s10", "s2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SortedSegments() = %v, want %v", got, want)
	}
}
