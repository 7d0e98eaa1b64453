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

// Package gateway provides the single point of access to the cluster's
// metadata store: versioned reads/compare-and-set of IdealState, reads
// of ExternalView, instance configs and InstancePartitions (spec.md
// §4.1). Modeled on the teacher's pkg/client interface-plus-single-
// implementation split.
package gateway

import (
	"context"

	rebalancev1alpha1 "tablemesh.io/rebalancer/api/v1alpha1"
)

// CASOutcome is the sum type named in spec.md §9: never collapse Fatal
// into VersionMismatch.
type CASOutcome int

const (
	// CASOk means the write committed.
	CASOk CASOutcome = iota
	// CASVersionMismatch means the store rejected the write because the
	// expected version is stale; the caller must re-read and re-plan.
	CASVersionMismatch
	// CASFatal means the write failed for any other reason.
	CASFatal
)

// Gateway is the Metadata Store Gateway interface of spec.md §4.1. All
// reads are point reads; there is no caching layer.
type Gateway interface {
	// ReadIdealState returns the table's IdealState, or nil if none
	// exists yet.
	ReadIdealState(ctx context.Context, tableNameWithType string) (*rebalancev1alpha1.IdealState, error)

	// CASIdealState attempts to persist record with an expected
	// resourceVersion. record.ResourceVersion is overwritten with
	// expectedVersion before the call. Non-version-mismatch failures are
	// reported as CASFatal with a non-nil error.
	CASIdealState(ctx context.Context, record *rebalancev1alpha1.IdealState, expectedVersion string) (CASOutcome, error)

	// ReadExternalView returns the table's ExternalView, or nil if none
	// exists yet (e.g. brand-new table).
	ReadExternalView(ctx context.Context, tableNameWithType string) (*rebalancev1alpha1.ExternalView, error)

	// ReadInstanceConfigs lists every known server instance.
	ReadInstanceConfigs(ctx context.Context) ([]rebalancev1alpha1.InstanceConfig, error)

	// PersistInstancePartitions idempotently creates or updates ip.
	PersistInstancePartitions(ctx context.Context, ip *rebalancev1alpha1.InstancePartitions) error

	// RemoveInstancePartitions deletes the named InstancePartitions
	// object. Deleting an object that does not exist is not an error.
	RemoveInstancePartitions(ctx context.Context, name string) error

	// FetchInstancePartitions returns the named InstancePartitions
	// object, or nil if it does not exist.
	FetchInstancePartitions(ctx context.Context, name string) (*rebalancev1alpha1.InstancePartitions, error)
}
