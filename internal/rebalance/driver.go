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

// Package rebalance implements the Rebalance Driver state machine:
// VALIDATE → RESOLVE_IP → COMPUTE_TARGET → (EARLY_EXIT | DOWNTIME_LOOP |
// NO_DOWNTIME_LOOP) → TERMINAL. Grounded directly on the teacher's
// MachineConfigPoolReconciler.Reconcile: validate inputs, resolve
// dependent state, compute a target, mutate the store with
// conflict-aware retry, and report — recording a metric and an event at
// every transition the way the teacher's reconciler does for rollouts.
package rebalance

import (
	"context"
	"fmt"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/log"

	rebalancev1alpha1 "tablemesh.io/rebalancer/api/v1alpha1"
	"tablemesh.io/rebalancer/internal/assignment"
	"tablemesh.io/rebalancer/internal/gateway"
	"tablemesh.io/rebalancer/internal/planner"
	"tablemesh.io/rebalancer/internal/rebaltypes"
	"tablemesh.io/rebalancer/internal/resolver"
)

// Driver owns one Rebalance call's dependencies.
type Driver struct {
	gw       gateway.Gateway
	resolver *resolver.Resolver
	factory  *assignment.Factory
	events   *EventRecorder
	clock    Clock
}

// NewDriver returns a Driver wired to gw. events may be nil (e.g. from
// the CLI entry point); clock defaults to RealClock when nil.
func NewDriver(gw gateway.Gateway, events *EventRecorder, clock Clock) *Driver {
	if clock == nil {
		clock = RealClock()
	}
	if events == nil {
		events = &EventRecorder{}
	}
	return &Driver{
		gw:       gw,
		resolver: resolver.New(gw),
		factory:  assignment.NewFactory(),
		events:   events,
		clock:    clock,
	}
}

// Rebalance is the entry point named in spec.md §6: a pure call (beyond
// the metadata store) that converges tableConfig's actual state toward
// its computed target.
func (d *Driver) Rebalance(
	ctx context.Context,
	table rebalancev1alpha1.TableConfigSpec,
	config rebaltypes.RebalanceConfig,
) (rebaltypes.RebalanceResult, error) {
	start := d.clock.Now()
	logger := log.FromContext(ctx).WithValues("table", table.TableNameWithType)

	result, err := d.run(ctx, table, config, logger)

	RecordDuration(table.TableNameWithType, d.clock.Now().Sub(start).Seconds())
	RecordAttempt(table.TableNameWithType, string(result.Status))

	return result, err
}

func (d *Driver) run(
	ctx context.Context,
	table rebalancev1alpha1.TableConfigSpec,
	config rebaltypes.RebalanceConfig,
	logger interface{ Info(string, ...any) },
) (rebaltypes.RebalanceResult, error) {
	// VALIDATE
	if table.TableType == rebalancev1alpha1.TableTypeRealtime && table.UseHighLevelConsumer {
		return d.fail(ctx, table, ErrHighLevelConsumerRealtime)
	}

	is, err := d.gw.ReadIdealState(ctx, table.TableNameWithType)
	if err != nil {
		return d.fail(ctx, table, fmt.Errorf("reading ideal state: %w", err))
	}
	if is == nil {
		return d.fail(ctx, table, fmt.Errorf("no ideal state found for table %s", table.TableNameWithType))
	}

	if !is.Spec.Enabled && !config.Downtime {
		return d.fail(ctx, table, ErrDisabledTableNoDowntime)
	}

	if err := rebaltypes.Validate(is.Spec.Assignment); err != nil {
		return d.fail(ctx, table, err)
	}

	d.events.Started(is)
	logger.Info("rebalance started")

	// RESOLVE_IP
	ipMap := make(map[rebalancev1alpha1.InstancePartitionsType]*rebalancev1alpha1.InstancePartitions)
	for _, ptype := range table.RelevantPartitionTypes() {
		ip, err := d.resolver.Resolve(ctx, table, ptype, config.ReassignInstances, config.DryRun)
		if err != nil {
			return d.fail(ctx, table, fmt.Errorf("resolving instance partitions for %s: %w", ptype, err))
		}
		ipMap[ptype] = ip
	}

	// COMPUTE_TARGET
	strategy, err := d.factory.Get(table.TableType, table.SegmentAssignmentStrategyName)
	if err != nil {
		return d.fail(ctx, table, err)
	}

	current := is.Spec.Assignment
	target, err := strategy.RebalanceTable(current, ipMap, assignment.Config{
		TableNameWithType: table.TableNameWithType,
		Replicas:          table.Replicas,
		IncludeConsuming:  config.IncludeConsuming,
	})
	if err != nil {
		return d.fail(ctx, table, fmt.Errorf("computing target assignment: %w", err))
	}

	// EARLY_EXIT
	if rebaltypes.Equal(current, target) {
		if config.ReassignInstances {
			return d.done(ctx, table, is, ipMap, target, "Instance partitions reassigned; table already balanced")
		}
		d.events.NoOp(is)
		logger.Info("rebalance no-op, table already balanced")
		return rebaltypes.RebalanceResult{
			Status:                rebaltypes.StatusNoOp,
			Message:               "table already balanced",
			InstancePartitionsMap: ipMap,
			TargetAssignment:      target,
		}, nil
	}

	if config.DryRun {
		return d.done(ctx, table, is, ipMap, target, "dry-run mode")
	}

	if config.Downtime {
		return d.downtimeLoop(ctx, table, is, ipMap, strategy, config, logger)
	}

	minAvailableReplicas, err := planner.EffectiveMinAvailableReplicas(
		replicaCountOf(current), replicaCountOf(target), config.MinReplicasToKeepUpForNoDowntime)
	if err != nil {
		return d.fail(ctx, table, fmt.Errorf("%w: %s", ErrIllegalMinReplicas, err.Error()))
	}

	return d.noDowntimeLoop(ctx, table, is, ipMap, strategy, config, minAvailableReplicas, logger)
}

// downtimeLoop implements the one-shot CAS-retry loop of spec.md §4.6.
func (d *Driver) downtimeLoop(
	ctx context.Context,
	table rebalancev1alpha1.TableConfigSpec,
	is *rebalancev1alpha1.IdealState,
	ipMap map[rebalancev1alpha1.InstancePartitionsType]*rebalancev1alpha1.InstancePartitions,
	strategy assignment.Strategy,
	config rebaltypes.RebalanceConfig,
	logger interface{ Info(string, ...any) },
) (rebaltypes.RebalanceResult, error) {
	current := is.Spec.Assignment
	target, err := strategy.RebalanceTable(current, ipMap, assignment.Config{
		TableNameWithType: table.TableNameWithType,
		Replicas:          table.Replicas,
		IncludeConsuming:  config.IncludeConsuming,
	})
	if err != nil {
		return d.fail(ctx, table, fmt.Errorf("computing target assignment: %w", err))
	}

	for {
		record := is.DeepCopy()
		record.Spec.Assignment = target
		record.Spec.NumPartitions = len(target)
		record.Spec.Replicas = table.Replicas

		outcome, err := d.gw.CASIdealState(ctx, record, is.ResourceVersion)
		switch outcome {
		case gateway.CASOk:
			return d.done(ctx, table, is, ipMap, target, "rebalance complete (downtime)")
		case gateway.CASVersionMismatch:
			RecordCASConflict(table.TableNameWithType)
			d.events.CASConflict(is)
			logger.Info("ideal state CAS conflict, re-reading and re-planning")

			refreshed, rerr := d.gw.ReadIdealState(ctx, table.TableNameWithType)
			if rerr != nil {
				return d.fail(ctx, table, fmt.Errorf("re-reading ideal state after CAS conflict: %w", rerr))
			}
			if refreshed == nil {
				return d.fail(ctx, table, ErrIdealStateDisappeared)
			}
			is = refreshed
			current = is.Spec.Assignment
			target, err = strategy.RebalanceTable(current, ipMap, assignment.Config{
				TableNameWithType: table.TableNameWithType,
				Replicas:          table.Replicas,
				IncludeConsuming:  config.IncludeConsuming,
			})
			if err != nil {
				return d.fail(ctx, table, fmt.Errorf("recomputing target assignment: %w", err))
			}
			continue
		default:
			return d.fail(ctx, table, fmt.Errorf("writing ideal state: %w", err))
		}
	}
}

// noDowntimeLoop implements the step-planned CAS loop of spec.md §4.6.
func (d *Driver) noDowntimeLoop(
	ctx context.Context,
	table rebalancev1alpha1.TableConfigSpec,
	is *rebalancev1alpha1.IdealState,
	ipMap map[rebalancev1alpha1.InstancePartitionsType]*rebalancev1alpha1.InstancePartitions,
	strategy assignment.Strategy,
	config rebaltypes.RebalanceConfig,
	minAvailableReplicas int,
	logger interface{ Info(string, ...any) },
) (rebaltypes.RebalanceResult, error) {
	expectedVersion := is.ResourceVersion
	current := is.Spec.Assignment
	target, err := strategy.RebalanceTable(current, ipMap, assignment.Config{
		TableNameWithType: table.TableNameWithType,
		Replicas:          table.Replicas,
		IncludeConsuming:  config.IncludeConsuming,
	})
	if err != nil {
		return d.fail(ctx, table, fmt.Errorf("computing target assignment: %w", err))
	}

	iterations := 0
	for {
		waitStart := d.clock.Now()
		converged, err := waitForExternalViewToConverge(ctx, d.gw, d.clock, d.events, table.TableNameWithType, config.BestEfforts)
		RecordEVWait(table.TableNameWithType, d.clock.Now().Sub(waitStart).Seconds())
		if err != nil {
			return d.fail(ctx, table, err)
		}

		if converged.ResourceVersion != expectedVersion {
			current = converged.Spec.Assignment
			target, err = strategy.RebalanceTable(current, ipMap, assignment.Config{
				TableNameWithType: table.TableNameWithType,
				Replicas:          table.Replicas,
				IncludeConsuming:  config.IncludeConsuming,
			})
			if err != nil {
				return d.fail(ctx, table, fmt.Errorf("recomputing target assignment: %w", err))
			}
			expectedVersion = converged.ResourceVersion
		}

		if rebaltypes.Equal(current, target) {
			RecordStepIterations(table.TableNameWithType, iterations)
			return d.done(ctx, table, converged, ipMap, target, "rebalance complete (no downtime)")
		}

		next := planner.GetNextAssignment(current, target, minAvailableReplicas)

		record := converged.DeepCopy()
		record.Spec.Assignment = next
		record.Spec.NumPartitions = len(next)
		record.Spec.Replicas = table.Replicas

		outcome, err := d.gw.CASIdealState(ctx, record, expectedVersion)
		iterations++
		switch outcome {
		case gateway.CASOk:
			current = next
			expectedVersion = record.ResourceVersion
		case gateway.CASVersionMismatch:
			RecordCASConflict(table.TableNameWithType)
			d.events.CASConflict(converged)
			logger.Info("ideal state CAS conflict, re-reading and re-planning")
			// Next iteration re-reads via the EV waiter's ReadIdealState call.
		default:
			return d.fail(ctx, table, fmt.Errorf("writing ideal state: %w", err))
		}
	}
}

func (d *Driver) done(
	ctx context.Context,
	table rebalancev1alpha1.TableConfigSpec,
	is *rebalancev1alpha1.IdealState,
	ipMap map[rebalancev1alpha1.InstancePartitionsType]*rebalancev1alpha1.InstancePartitions,
	target rebalancev1alpha1.Assignment,
	message string,
) (rebaltypes.RebalanceResult, error) {
	d.events.Done(is, message)
	return rebaltypes.RebalanceResult{
		Status:                rebaltypes.StatusDone,
		Message:               message,
		InstancePartitionsMap: ipMap,
		TargetAssignment:      target,
	}, nil
}

func (d *Driver) fail(
	ctx context.Context,
	table rebalancev1alpha1.TableConfigSpec,
	err error,
) (rebaltypes.RebalanceResult, error) {
	placeholder := &rebalancev1alpha1.IdealState{
		ObjectMeta: metav1.ObjectMeta{Name: table.TableNameWithType},
	}
	d.events.Failed(placeholder, err.Error())
	log.FromContext(ctx).Info("rebalance failed", "table", table.TableNameWithType, "error", err.Error())
	return rebaltypes.RebalanceResult{
		Status:  rebaltypes.StatusFailed,
		Message: err.Error(),
	}, err
}

func replicaCountOf(a rebalancev1alpha1.Assignment) int {
	for _, states := range a {
		return len(states)
	}
	return 0
}
