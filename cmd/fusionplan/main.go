// fusionplan plans operator fusion for a neural-network graph and reports the fusion groups,
// their validity and the external memory traffic they save.
//
// Usage:
//
//	fusionplan -graph=model.yaml [-policy=greedy_chain] [-check] [-list] [-plan_out=plan.yaml]
//	fusionplan -graph=model.yaml -plan=hand_made_plan.yaml -check
package main

import (
	"flag"
	"os"

	"k8s.io/klog/v2"
)

var (
	flagGraph  = flag.String("graph", "", "YAML graph description of the model. Required.")
	flagPolicy = flag.String("policy", "",
		"Fusion policy, \"greedy_chain\" or \"branch_stopping\". "+
			"If empty, the policy of the graph description is used, or else branch_stopping.")
	flagPlan = flag.String("plan", "",
		"Plan file to apply to the graph instead of running the fusion policy, e.g. a hand-authored plan.")
	flagPlanOut = flag.String("plan_out", "", "If set, the resulting fusion plan is written to this file.")
	flagCheck   = flag.Bool("check", false,
		"Run the validity checks over the fusion plan and print PASS, or the defects and FAILED: <number of defects>.")
	flagList = flag.Bool("list", false, "List the operators of the graph with their successors.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if *flagGraph == "" {
		klog.Errorf("Missing -graph. See 'fusionplan -help'.")
		os.Exit(1)
	}
	if len(flag.Args()) > 0 {
		klog.Errorf("Unexpected arguments %q. See 'fusionplan -help'.", flag.Args())
		os.Exit(1)
	}
	opts := options{
		graphPath: *flagGraph,
		policy:    *flagPolicy,
		planPath:  *flagPlan,
		planOut:   *flagPlanOut,
		check:     *flagCheck,
		list:      *flagList,
	}
	if err := run(os.Stdout, opts); err != nil {
		klog.Errorf("%+v", err)
		os.Exit(1)
	}
}
