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

import "k8s.io/utils/clock"

// Clock abstracts the passage of time so the EV Convergence Waiter's
// MAX_WAIT timeout can be exercised in tests without a real sleep.
type Clock = clock.Clock

// RealClock returns the production Clock implementation.
func RealClock() Clock { return clock.RealClock{} }
