package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/gomlx/fusionplan"
	"github.com/gomlx/fusionplan/graphio"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// options of one run, taken from the flags.
type options struct {
	graphPath, policy, planPath, planOut string
	check, list                          bool
}

// run loads the graph, plans (or loads) its fusion, and writes the report to w.
// A failed validity check is returned as an error, after the defects are reported.
func run(w io.Writer, opts options) error {
	desc, err := graphio.Load(opts.graphPath)
	if err != nil {
		return err
	}
	g, err := desc.Build()
	if err != nil {
		return err
	}
	klog.V(1).Infof("loaded graph %q: %d operators, %d tensors", g.Name(), g.NumOperators(), len(g.Tensors()))

	planSource, policy, err := plan(g, desc, opts)
	if err != nil {
		return err
	}

	if opts.list {
		printOperators(w, g)
	}
	printGroups(w, g, planSource)
	printTraffic(w, g)

	if opts.planOut != "" {
		if err := writePlan(opts.planOut, g, policy); err != nil {
			return err
		}
	}

	if opts.check {
		if numDefects := printCheck(w, g); numDefects > 0 {
			return errors.Errorf("fusion plan of graph %q has %d defects", g.Name(), numDefects)
		}
	}
	return nil
}

// plan sets the fusion groups of g. It returns where they came from, a policy name or a file, and the
// name of the policy that generated them, if known.
//
// The order of preference is: the -plan file, the -policy flag, the plan in the graph description,
// the policy in the graph description.
func plan(g *fusionplan.Graph, desc *graphio.Description, opts options) (source, policyName string, err error) {
	if opts.planPath != "" {
		f, err := os.Open(opts.planPath)
		if err != nil {
			return "", "", errors.Wrap(err, "opening plan file")
		}
		defer func() { _ = f.Close() }()
		pf, err := graphio.DecodePlan(f)
		if err != nil {
			return "", "", errors.WithMessagef(err, "plan file %q", opts.planPath)
		}
		if err := pf.ApplyTo(g); err != nil {
			return "", "", errors.WithMessagef(err, "plan file %q", opts.planPath)
		}
		return opts.planPath, pf.Policy, nil
	}

	if opts.policy == "" && len(desc.Plan) > 0 {
		// Build already applied it.
		return opts.graphPath, "", nil
	}

	var policy fusionplan.Policy
	if opts.policy != "" {
		policy, err = fusionplan.PolicyString(opts.policy)
		if err != nil {
			return "", "", errors.Wrapf(err, "-policy=%q", opts.policy)
		}
	} else {
		policy, err = desc.FusionPolicy()
		if err != nil {
			return "", "", err
		}
	}
	if err := fusionplan.PlanFusion(g, policy); err != nil {
		return "", "", err
	}
	return policy.String(), policy.String(), nil
}

func printOperators(w io.Writer, g *fusionplan.Graph) {
	_, _ = fmt.Fprintln(w, titleStyle.Render("Operators"))
	for _, op := range g.Operators() {
		_, _ = fmt.Fprintf(w, "%s: %v\n", op, op.Successors())
	}
}

func printGroups(w io.Writer, g *fusionplan.Graph, planSource string) {
	_, _ = fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Fusion groups (%s)", planSource)))
	table := newPlainTable(lipgloss.Right, lipgloss.Right, lipgloss.Left).
		Headers("group", "# operators", "operators")
	for _, group := range g.Groups() {
		names := make([]string, group.Len())
		for i, op := range group.Operators() {
			names[i] = op.String()
		}
		table.Row(strconv.Itoa(group.ID()), strconv.Itoa(group.Len()), strings.Join(names, " → "))
	}
	_, _ = fmt.Fprintln(w, table.Render())
}

func printTraffic(w io.Writer, g *fusionplan.Graph) {
	_, _ = fmt.Fprintln(w, titleStyle.Render("External memory traffic"))
	traffic := fusionplan.MeasureTraffic(g)
	ratio := "n/a (no I/O tensors)"
	if r, err := traffic.Ratio(); err == nil {
		ratio = fmt.Sprintf("%.1f%%", 100*r)
	}
	table := newPlainTable(lipgloss.Right, lipgloss.Left)
	table.Row("unfused", humanize.Bytes(traffic.TotalBytes))
	table.Row("fused", humanize.Bytes(traffic.FusedBytes))
	table.Row("saved", humanize.Bytes(traffic.Saved()))
	table.Row("ratio", ratio)
	_, _ = fmt.Fprintln(w, table.Render())
}

// printCheck reports the defects of the fusion plan, and returns how many there are.
func printCheck(w io.Writer, g *fusionplan.Graph) int {
	defects := fusionplan.CheckValidity(g)
	if len(defects) == 0 {
		_, _ = fmt.Fprintln(w, "PASS")
		return 0
	}
	for _, defect := range defects {
		_, _ = fmt.Fprintln(w, defect)
	}
	_, _ = fmt.Fprintf(w, "FAILED: %d\n", len(defects))
	return len(defects)
}

func writePlan(path string, g *fusionplan.Graph, policy string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating plan file")
	}
	if err := graphio.EncodePlan(f, g, policy); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "writing plan file %q", path)
	}
	klog.V(1).Infof("fusion plan written to %q", path)
	return nil
}
