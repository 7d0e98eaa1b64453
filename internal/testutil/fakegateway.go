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

// Package testutil provides common test doubles shared across this
// module's test packages, the way the teacher's tests/testutil does for
// its controller and agent suites.
package testutil

import (
	"context"
	"errors"
	"strconv"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	rebalancev1alpha1 "tablemesh.io/rebalancer/api/v1alpha1"
	"tablemesh.io/rebalancer/internal/gateway"
)

// FakeGateway is an in-memory gateway.Gateway double. It never touches a
// real client, trading fidelity for speed and determinism in unit and
// integration tests alike.
type FakeGateway struct {
	Instances    []rebalancev1alpha1.InstanceConfig
	CASCalls     int
	FailCASTimes int
	Persisted    []string
	Removed      []string

	// AutoConverge, when set, makes every successful IdealState write
	// immediately mirror its assignment into the ExternalView, the way a
	// cluster with instantaneous segment state propagation would behave.
	// It lets tests drive the no-downtime convergence loop end to end
	// without a real sleep between steps.
	AutoConverge bool

	idealStates        map[string]*rebalancev1alpha1.IdealState
	externalViews      map[string]*rebalancev1alpha1.ExternalView
	instancePartitions map[string]*rebalancev1alpha1.InstancePartitions
	version            int
	history            []*rebalancev1alpha1.IdealState
}

// NewFakeGateway returns an empty FakeGateway.
func NewFakeGateway() *FakeGateway {
	return &FakeGateway{
		idealStates:        make(map[string]*rebalancev1alpha1.IdealState),
		externalViews:      make(map[string]*rebalancev1alpha1.ExternalView),
		instancePartitions: make(map[string]*rebalancev1alpha1.InstancePartitions),
	}
}

var _ gateway.Gateway = (*FakeGateway)(nil)

// PutIdealState seeds the store with is, assigning it the next fake
// resourceVersion.
func (f *FakeGateway) PutIdealState(is *rebalancev1alpha1.IdealState) {
	f.version++
	is.ResourceVersion = strconv.Itoa(f.version)
	f.idealStates[is.Name] = is.DeepCopy()
	f.history = append(f.history, is.DeepCopy())
	f.maybeAutoConverge(is)
}

// History returns every IdealState snapshot committed so far, in
// commit order, for tests that assert on intermediate steps rather
// than just the final result.
func (f *FakeGateway) History() []*rebalancev1alpha1.IdealState {
	return f.history
}

// maybeAutoConverge mirrors is's assignment into the ExternalView when
// AutoConverge is enabled.
func (f *FakeGateway) maybeAutoConverge(is *rebalancev1alpha1.IdealState) {
	if !f.AutoConverge {
		return
	}
	f.externalViews[is.Name] = &rebalancev1alpha1.ExternalView{
		ObjectMeta: metav1.ObjectMeta{Name: is.Name},
		Spec:       rebalancev1alpha1.ExternalViewSpec{Assignment: is.Spec.Assignment.DeepCopy()},
	}
}

// PutExternalView seeds the store with ev.
func (f *FakeGateway) PutExternalView(ev *rebalancev1alpha1.ExternalView) {
	f.externalViews[ev.Name] = ev.DeepCopy()
}

func (f *FakeGateway) ReadIdealState(_ context.Context, tableNameWithType string) (*rebalancev1alpha1.IdealState, error) {
	is, ok := f.idealStates[tableNameWithType]
	if !ok {
		return nil, nil
	}
	return is.DeepCopy(), nil
}

func (f *FakeGateway) CASIdealState(_ context.Context, record *rebalancev1alpha1.IdealState, expectedVersion string) (gateway.CASOutcome, error) {
	f.CASCalls++
	if f.FailCASTimes > 0 {
		f.FailCASTimes--
		return gateway.CASVersionMismatch, errors.New("simulated concurrent write")
	}
	existing := f.idealStates[record.Name]
	if existing == nil || existing.ResourceVersion != expectedVersion {
		return gateway.CASVersionMismatch, errors.New("version conflict")
	}
	f.version++
	record.ResourceVersion = strconv.Itoa(f.version)
	f.idealStates[record.Name] = record.DeepCopy()
	f.history = append(f.history, record.DeepCopy())
	f.maybeAutoConverge(record)
	return gateway.CASOk, nil
}

func (f *FakeGateway) ReadExternalView(_ context.Context, tableNameWithType string) (*rebalancev1alpha1.ExternalView, error) {
	ev, ok := f.externalViews[tableNameWithType]
	if !ok {
		return nil, nil
	}
	return ev.DeepCopy(), nil
}

func (f *FakeGateway) ReadInstanceConfigs(context.Context) ([]rebalancev1alpha1.InstanceConfig, error) {
	return f.Instances, nil
}

func (f *FakeGateway) PersistInstancePartitions(_ context.Context, ip *rebalancev1alpha1.InstancePartitions) error {
	f.Persisted = append(f.Persisted, ip.Name)
	f.instancePartitions[ip.Name] = ip
	return nil
}

func (f *FakeGateway) RemoveInstancePartitions(_ context.Context, name string) error {
	f.Removed = append(f.Removed, name)
	delete(f.instancePartitions, name)
	return nil
}

func (f *FakeGateway) FetchInstancePartitions(_ context.Context, name string) (*rebalancev1alpha1.InstancePartitions, error) {
	return f.instancePartitions[name], nil
}

// PutInstancePartitions seeds the store with an already-persisted
// InstancePartitions object, as if a prior Resolve had run.
func (f *FakeGateway) PutInstancePartitions(ip *rebalancev1alpha1.InstancePartitions) {
	f.instancePartitions[ip.Name] = ip
}

// EnabledInstance is a convenience constructor for an enabled
// InstanceConfig with no pool/tag assignment.
func EnabledInstance(name string) rebalancev1alpha1.InstanceConfig {
	return rebalancev1alpha1.InstanceConfig{
		ObjectMeta: metav1.ObjectMeta{Name: name},
		Spec:       rebalancev1alpha1.InstanceConfigSpec{Enabled: true},
	}
}

// EnabledInstanceInPool is EnabledInstance with a pool assignment, for
// resolver tests that group instances by pool.
func EnabledInstanceInPool(name, pool string) rebalancev1alpha1.InstanceConfig {
	inst := EnabledInstance(name)
	inst.Spec.Pool = pool
	return inst
}
