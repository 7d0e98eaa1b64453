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

// Package main is the entry point for the rebalancer CLI: a one-shot
// command that rebalances a single table and exits, the synchronous
// counterpart of the admin REST handler this repo does not implement.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	_ "k8s.io/client-go/plugin/pkg/client/auth"
	"sigs.k8s.io/controller-runtime/pkg/client"

	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"

	rebalancev1alpha1 "tablemesh.io/rebalancer/api/v1alpha1"
	"tablemesh.io/rebalancer/internal/gateway"
	"tablemesh.io/rebalancer/internal/rebalance"
	"tablemesh.io/rebalancer/internal/rebaltypes"
)

var setupLog = ctrl.Log.WithName("setup")

func main() {
	var tableNameWithType string
	var dryRun bool
	var reassignInstances bool
	var includeConsuming bool
	var downtime bool
	var bestEfforts bool
	var minReplicasToKeepUp int

	flag.StringVar(&tableNameWithType, "table", "", "Fully qualified table name to rebalance (e.g. myTable_OFFLINE)")
	flag.BoolVar(&dryRun, "dry-run", false, "Compute the target assignment without writing it")
	flag.BoolVar(&reassignInstances, "reassign-instances", false, "Recompute instance partitions before rebalancing")
	flag.BoolVar(&includeConsuming, "include-consuming", false, "Consider CONSUMING replicas for realtime tables")
	flag.BoolVar(&downtime, "downtime", false, "Replace IdealState in one step with no availability guard")
	flag.BoolVar(&bestEfforts, "best-efforts", false, "Downgrade ERROR states and EV timeouts to warnings")
	flag.IntVar(&minReplicasToKeepUp, "min-replicas-to-keep-up", 1, "Availability floor for the no-downtime loop")

	opts := zap.Options{
		Development: true,
	}
	opts.BindFlags(flag.CommandLine)
	flag.Parse()

	ctrl.SetLogger(zap.New(zap.UseFlagOptions(&opts)))

	if tableNameWithType == "" {
		setupLog.Error(nil, "-table is required")
		os.Exit(1)
	}

	config := ctrl.GetConfigOrDie()
	rtClient, err := client.New(config, client.Options{})
	if err != nil {
		setupLog.Error(err, "unable to create controller-runtime client")
		os.Exit(1)
	}
	if err := rebalancev1alpha1.AddToScheme(rtClient.Scheme()); err != nil {
		setupLog.Error(err, "unable to add rebalancer scheme")
		os.Exit(1)
	}

	gw := gateway.NewRuntimeGateway(rtClient)

	ctx := ctrl.SetupSignalHandler()

	table := &rebalancev1alpha1.TableConfig{}
	if err := rtClient.Get(ctx, client.ObjectKey{Name: tableNameWithType}, table); err != nil {
		setupLog.Error(err, "unable to read table config", "table", tableNameWithType)
		os.Exit(1)
	}

	driver := rebalance.NewDriver(gw, nil, nil)
	result, err := driver.Rebalance(ctx, table.Spec, rebaltypes.RebalanceConfig{
		DryRun:                           dryRun,
		ReassignInstances:                reassignInstances,
		IncludeConsuming:                 includeConsuming,
		Downtime:                         downtime,
		MinReplicasToKeepUpForNoDowntime: minReplicasToKeepUp,
		BestEfforts:                      bestEfforts,
	})

	encoded, encErr := json.MarshalIndent(result, "", "  ")
	if encErr != nil {
		setupLog.Error(encErr, "unable to encode result")
		os.Exit(1)
	}
	fmt.Println(string(encoded))

	if err != nil {
		os.Exit(1)
	}
}
