package graphio

import (
	"io"
	"strconv"

	"github.com/gomlx/fusionplan"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// PlanFile is the YAML representation of a fusion plan.
type PlanFile struct {
	// Graph is the name of the graph the plan was made for.
	Graph string `yaml:"graph,omitempty"`

	// Policy that generated the plan. Empty for hand-authored plans.
	Policy string `yaml:"policy,omitempty"`

	// Groups of operator IDs, in execution order.
	Groups fusionplan.Plan `yaml:"groups"`
}

// planFileYAML is how PlanFile is written: each group in one line.
type planFileYAML struct {
	Graph  string     `yaml:"graph,omitempty"`
	Policy string     `yaml:"policy,omitempty"`
	Groups []flowInts `yaml:"groups"`
}

// flowInts is a list of ints marshaled in YAML flow style, e.g. "[0, 1, 2]".
type flowInts []int

// MarshalYAML implements yaml.Marshaler.
func (ints flowInts) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range ints {
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(v)})
	}
	return node, nil
}

// EncodePlan writes the current fusion groups of g as a PlanFile.
// policy is optional, and is only recorded for information.
func EncodePlan(w io.Writer, g *fusionplan.Graph, policy string) error {
	plan := g.Plan()
	out := planFileYAML{
		Graph:  g.Name(),
		Policy: policy,
		Groups: make([]flowInts, len(plan)),
	}
	for i, ids := range plan {
		out.Groups[i] = ids
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return errors.Wrapf(err, "encoding plan of graph %q", g.Name())
	}
	return errors.Wrapf(enc.Close(), "encoding plan of graph %q", g.Name())
}

// DecodePlan reads a PlanFile from r.
func DecodePlan(r io.Reader) (*PlanFile, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	pf := &PlanFile{}
	if err := dec.Decode(pf); err != nil {
		return nil, errors.Wrap(err, "decoding fusion plan")
	}
	return pf, nil
}

// ApplyTo installs the plan in g, see fusionplan.Graph.ApplyPlan.
// It fails if the plan was made for a graph with a different name.
func (pf *PlanFile) ApplyTo(g *fusionplan.Graph) error {
	if pf.Graph != "" && pf.Graph != g.Name() {
		return errors.Errorf("plan was made for graph %q, not %q", pf.Graph, g.Name())
	}
	return g.ApplyPlan(pf.Groups)
}
