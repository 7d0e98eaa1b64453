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

// Package convergence decides whether ExternalView has caught up with
// IdealState, under the best-effort policy of spec.md §4.4. It mirrors
// the teacher's AggregateStatus comparison-of-desired-vs-actual shape
// (internal/controller/status.go), keyed on segment/instance pairs
// instead of nodes.
package convergence

import (
	"fmt"

	rebalancev1alpha1 "tablemesh.io/rebalancer/api/v1alpha1"
	"tablemesh.io/rebalancer/internal/rebaltypes"
)

// ErrSegmentsInError is returned when ExternalView reports ERROR for an
// IdealState entry and the caller did not opt into best-efforts.
type ErrSegmentsInError struct {
	Table    string
	Segment  string
	Instance string
}

func (e *ErrSegmentsInError) Error() string {
	return fmt.Sprintf("table %s: segment %s instance %s is in ERROR state", e.Table, e.Segment, e.Instance)
}

// Warning is emitted for best-efforts downgrades (ERROR treated as
// converged). Callers collect these for logging/events without
// aborting the rebalance.
type Warning struct {
	Segment  string
	Instance string
	Message  string
}

// Result is the outcome of a single Converged evaluation.
type Result struct {
	Converged bool
	Warnings  []Warning
}

// Converged implements spec.md §4.4's per-segment rules. evAssignment
// may be nil (EV not yet created for a brand-new table); that is
// equivalent to an empty assignment.
func Converged(tableName string, evAssignment, isAssignment rebalancev1alpha1.Assignment, bestEfforts bool) (Result, error) {
	result := Result{Converged: true}

	for _, segment := range rebaltypes.SortedSegments(isAssignment) {
		isStates := isAssignment[segment]
		evStates, evHasSegment := evAssignment[segment]

		for _, instance := range rebaltypes.SortedInstances(isStates) {
			isState := isStates[instance]

			if isState == rebalancev1alpha1.SegmentStateOffline {
				continue
			}

			if !evHasSegment {
				result.Converged = false
				continue
			}

			evState, hasInstance := evStates[instance]
			if !hasInstance {
				result.Converged = false
				continue
			}

			if evState == isState {
				continue
			}

			if evState == rebalancev1alpha1.SegmentStateError {
				if bestEfforts {
					result.Warnings = append(result.Warnings, Warning{
						Segment:  segment,
						Instance: instance,
						Message:  "segment in ERROR state, treated as converged under best-efforts",
					})
					continue
				}
				return Result{}, &ErrSegmentsInError{Table: tableName, Segment: segment, Instance: instance}
			}

			result.Converged = false
		}
	}

	return result, nil
}
