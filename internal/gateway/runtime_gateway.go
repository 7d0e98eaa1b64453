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

package gateway

import (
	"context"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"

	rebalancev1alpha1 "tablemesh.io/rebalancer/api/v1alpha1"
)

// Compile-time interface compliance check.
var _ Gateway = (*RuntimeGateway)(nil)

// RuntimeGateway implements Gateway using controller-runtime's client.
// Every resource in this module is cluster-scoped, so every
// types.NamespacedName below carries an empty Namespace.
type RuntimeGateway struct {
	client client.Client
}

// NewRuntimeGateway creates a new RuntimeGateway wrapping the provided
// controller-runtime client.
func NewRuntimeGateway(c client.Client) *RuntimeGateway {
	return &RuntimeGateway{client: c}
}

// ReadIdealState implements Gateway.
func (g *RuntimeGateway) ReadIdealState(ctx context.Context, tableNameWithType string) (*rebalancev1alpha1.IdealState, error) {
	is := &rebalancev1alpha1.IdealState{}
	err := g.client.Get(ctx, types.NamespacedName{Name: tableNameWithType}, is)
	if apierrors.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return is, nil
}

// CASIdealState implements Gateway. A conflict is reported as
// CASVersionMismatch so the caller can re-read and re-plan; every other
// failure is CASFatal.
func (g *RuntimeGateway) CASIdealState(ctx context.Context, record *rebalancev1alpha1.IdealState, expectedVersion string) (CASOutcome, error) {
	record.ResourceVersion = expectedVersion
	err := g.client.Update(ctx, record)
	if err == nil {
		return CASOk, nil
	}
	if apierrors.IsConflict(err) {
		return CASVersionMismatch, err
	}
	return CASFatal, err
}

// ReadExternalView implements Gateway.
func (g *RuntimeGateway) ReadExternalView(ctx context.Context, tableNameWithType string) (*rebalancev1alpha1.ExternalView, error) {
	ev := &rebalancev1alpha1.ExternalView{}
	err := g.client.Get(ctx, types.NamespacedName{Name: tableNameWithType}, ev)
	if apierrors.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ev, nil
}

// ReadInstanceConfigs implements Gateway.
func (g *RuntimeGateway) ReadInstanceConfigs(ctx context.Context) ([]rebalancev1alpha1.InstanceConfig, error) {
	list := &rebalancev1alpha1.InstanceConfigList{}
	if err := g.client.List(ctx, list); err != nil {
		return nil, err
	}
	return list.Items, nil
}

// PersistInstancePartitions implements Gateway, creating ip if it does
// not already exist and updating it in place otherwise.
func (g *RuntimeGateway) PersistInstancePartitions(ctx context.Context, ip *rebalancev1alpha1.InstancePartitions) error {
	existing := &rebalancev1alpha1.InstancePartitions{}
	err := g.client.Get(ctx, types.NamespacedName{Name: ip.Name}, existing)
	if apierrors.IsNotFound(err) {
		return g.client.Create(ctx, ip)
	}
	if err != nil {
		return err
	}

	ip.ResourceVersion = existing.ResourceVersion
	return g.client.Update(ctx, ip)
}

// RemoveInstancePartitions implements Gateway.
func (g *RuntimeGateway) RemoveInstancePartitions(ctx context.Context, name string) error {
	ip := &rebalancev1alpha1.InstancePartitions{
		ObjectMeta: metav1.ObjectMeta{Name: name},
	}
	err := g.client.Delete(ctx, ip)
	if apierrors.IsNotFound(err) {
		return nil
	}
	return err
}

// FetchInstancePartitions implements Gateway.
func (g *RuntimeGateway) FetchInstancePartitions(ctx context.Context, name string) (*rebalancev1alpha1.InstancePartitions, error) {
	ip := &rebalancev1alpha1.InstancePartitions{}
	err := g.client.Get(ctx, types.NamespacedName{Name: name}, ip)
	if apierrors.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ip, nil
}
