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
	"context"
	"fmt"
	"time"

	"sigs.k8s.io/controller-runtime/pkg/log"

	"tablemesh.io/rebalancer/internal/convergence"
	"tablemesh.io/rebalancer/internal/gateway"

	rebalancev1alpha1 "tablemesh.io/rebalancer/api/v1alpha1"
)

// ExternalViewCheckInterval is the poll interval of the EV Convergence Waiter.
const ExternalViewCheckInterval = 1 * time.Second

// ExternalViewStabilizationMaxWait is the maximum time the waiter polls
// before giving up.
const ExternalViewStabilizationMaxWait = 3600 * time.Second

// waitForExternalViewToConverge polls the external view every
// ExternalViewCheckInterval, up to ExternalViewStabilizationMaxWait,
// until it matches the table's current ideal state under the rules of
// the convergence checker. It returns the latest IdealState it observed.
func waitForExternalViewToConverge(
	ctx context.Context,
	gw gateway.Gateway,
	clock Clock,
	events *EventRecorder,
	tableNameWithType string,
	bestEfforts bool,
) (*rebalancev1alpha1.IdealState, error) {
	deadline := clock.Now().Add(ExternalViewStabilizationMaxWait)

	for {
		is, err := gw.ReadIdealState(ctx, tableNameWithType)
		if err != nil {
			return nil, fmt.Errorf("reading ideal state: %w", err)
		}
		if is == nil {
			return nil, ErrIdealStateDisappeared
		}

		ev, err := gw.ReadExternalView(ctx, tableNameWithType)
		if err != nil {
			return nil, fmt.Errorf("reading external view: %w", err)
		}

		var evAssignment rebalancev1alpha1.Assignment
		if ev != nil {
			evAssignment = ev.Spec.Assignment
		}

		result, err := convergence.Converged(tableNameWithType, evAssignment, is.Spec.Assignment, bestEfforts)
		if err != nil {
			return nil, err
		}
		for _, w := range result.Warnings {
			log.FromContext(ctx).Info("segment in ERROR state treated as converged under best-efforts",
				"table", tableNameWithType, "segment", w.Segment, "instance", w.Instance, "message", w.Message)
			events.SegmentsInError(is, w.Segment, w.Instance)
		}
		if result.Converged {
			return is, nil
		}

		if clock.Now().After(deadline) {
			if bestEfforts {
				events.ConvergenceTimeout(is)
				return is, nil
			}
			return nil, ErrConvergenceTimeout
		}

		clock.Sleep(ExternalViewCheckInterval)
	}
}
