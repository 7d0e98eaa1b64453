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

import "errors"

// Sentinel errors for the input-invalid classification of the error
// taxonomy. The Driver never writes to the store after returning one of
// these.
var (
	ErrHighLevelConsumerRealtime = errors.New("high-level consumer realtime tables are not supported")
	ErrDisabledTableNoDowntime   = errors.New("Cannot rebalance disabled table without downtime")
	ErrIllegalMinReplicas        = errors.New("minReplicasToKeepUpForNoDowntime must be less than the number of replicas")

	// ErrConvergenceTimeout is raised by the EV Convergence Waiter when
	// bestEfforts is false and MAX_WAIT elapses without convergence.
	ErrConvergenceTimeout = errors.New("external view did not converge within the maximum wait time")

	// ErrIdealStateDisappeared is raised when the IdealState record is
	// gone mid-wait (the table was deleted out from under the rebalance).
	ErrIdealStateDisappeared = errors.New("ideal state disappeared during convergence wait")
)
