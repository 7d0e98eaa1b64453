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

package rebalance

import (
	corev1 "k8s.io/api/core/v1"
	"k8s.io/client-go/tools/record"

	rebalancev1alpha1 "tablemesh.io/rebalancer/api/v1alpha1"
)

// Event reasons for the rebalance lifecycle.
const (
	ReasonRebalanceStarted   = "RebalanceStarted"
	ReasonRebalanceDone      = "RebalanceDone"
	ReasonRebalanceNoOp      = "RebalanceNoOp"
	ReasonRebalanceFailed    = "RebalanceFailed"
	ReasonCASConflict        = "CASConflict"
	ReasonSegmentsInError    = "SegmentsInError"
	ReasonConvergenceTimeout = "ConvergenceTimeout"
)

// EventRecorder emits Kubernetes events for rebalance lifecycle
// transitions on the table's IdealState object. Nil-safe: every method
// is a no-op when recorder is nil, so the Driver may be used without an
// EventRecorder (e.g. from the CLI entry point, or in tests).
type EventRecorder struct {
	recorder record.EventRecorder
}

// NewEventRecorder creates a new EventRecorder.
func NewEventRecorder(recorder record.EventRecorder) *EventRecorder {
	return &EventRecorder{recorder: recorder}
}

// Started emits a normal event when a rebalance begins.
func (e *EventRecorder) Started(is *rebalancev1alpha1.IdealState) {
	if e.recorder == nil {
		return
	}
	e.recorder.Event(is, corev1.EventTypeNormal, ReasonRebalanceStarted, "Rebalance started")
}

// Done emits a normal event when a rebalance completes successfully.
func (e *EventRecorder) Done(is *rebalancev1alpha1.IdealState, message string) {
	if e.recorder == nil {
		return
	}
	e.recorder.Event(is, corev1.EventTypeNormal, ReasonRebalanceDone, message)
}

// NoOp emits a normal event when a rebalance finds the table already balanced.
func (e *EventRecorder) NoOp(is *rebalancev1alpha1.IdealState) {
	if e.recorder == nil {
		return
	}
	e.recorder.Event(is, corev1.EventTypeNormal, ReasonRebalanceNoOp, "Table already balanced")
}

// Failed emits a warning event when a rebalance fails.
func (e *EventRecorder) Failed(is *rebalancev1alpha1.IdealState, reason string) {
	if e.recorder == nil {
		return
	}
	e.recorder.Eventf(is, corev1.EventTypeWarning, ReasonRebalanceFailed, "Rebalance failed: %s", reason)
}

// CASConflict emits a warning event when an IdealState write hits a
// stale version.
func (e *EventRecorder) CASConflict(is *rebalancev1alpha1.IdealState) {
	if e.recorder == nil {
		return
	}
	e.recorder.Event(is, corev1.EventTypeWarning, ReasonCASConflict, "IdealState CAS conflict, re-reading and re-planning")
}

// SegmentsInError emits a warning event when a convergence check finds
// replicas in ERROR state that were downgraded under best-efforts.
func (e *EventRecorder) SegmentsInError(is *rebalancev1alpha1.IdealState, segment, instance string) {
	if e.recorder == nil {
		return
	}
	e.recorder.Eventf(is, corev1.EventTypeWarning, ReasonSegmentsInError,
		"Segment %s instance %s is in ERROR state, treated as converged under best-efforts", segment, instance)
}

// ConvergenceTimeout emits a warning event when the EV waiter times out
// under best-efforts.
func (e *EventRecorder) ConvergenceTimeout(is *rebalancev1alpha1.IdealState) {
	if e.recorder == nil {
		return
	}
	e.recorder.Event(is, corev1.EventTypeWarning, ReasonConvergenceTimeout,
		"External view did not converge within the maximum wait time, continuing under best-efforts")
}
