package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/fastflow/core"
	"github.com/katalvlaran/fastflow/pflow"
	"gopkg.in/yaml.v3"
)

// ErrUnknownPlane is returned when a YAML plane tag is not one of the
// six recognized names, written all upper- or all lower-case (XY/xy,
// YZ/yz, ZX/zx, X/x, Y/y, Z/z).
var ErrUnknownPlane = errors.New("config: unrecognized plane tag")

// Instance is the YAML-decoded shape of an open-graph problem, mirroring
// spec.md §6's external interface inputs (g, I, O, plane) before they
// are resolved into core.Graph/core.NodeSet/pflow.PlaneAssignment.
type Instance struct {
	N      int        `yaml:"n"`
	Edges  [][2]int   `yaml:"edges"`
	I      []int      `yaml:"i"`
	O      []int      `yaml:"o"`
	Planes map[int]string `yaml:"planes,omitempty"`
}

// Option customizes Load's decoding behavior.
type Option func(*options)

type options struct {
	strict bool
}

// WithStrict rejects YAML documents carrying fields Instance does not
// declare, instead of silently ignoring them.
func WithStrict() Option {
	return func(o *options) { o.strict = true }
}

// Load reads and decodes an Instance from the YAML file at path.
func Load(path string, opts ...Option) (*Instance, error) {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var inst Instance
	if cfg.strict {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&inst); err != nil {
			return nil, fmt.Errorf("config: strict decode of %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, &inst); err != nil {
		return nil, fmt.Errorf("config: decode of %s: %w", path, err)
	}
	return &inst, nil
}

// Build resolves the decoded Instance into the core types the solver
// packages consume: a symmetric core.Graph, the I/O NodeSets, and (if
// Planes was provided) a pflow.PlaneAssignment.
func (inst *Instance) Build() (g *core.Graph, i, o *core.NodeSet, planes pflow.PlaneAssignment, err error) {
	g, err = core.NewGraph(inst.N)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	for _, e := range inst.Edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, nil, nil, nil, fmt.Errorf("config: edge (%d,%d): %w", e[0], e[1], err)
		}
	}
	i = core.NewNodeSetFromSlice(inst.N, inst.I)
	o = core.NewNodeSetFromSlice(inst.N, inst.O)

	if len(inst.Planes) > 0 {
		planes = make(pflow.PlaneAssignment, len(inst.Planes))
		for v, tag := range inst.Planes {
			p, err := parsePlane(tag)
			if err != nil {
				return nil, nil, nil, nil, fmt.Errorf("config: vertex %d: %w", v, err)
			}
			planes[v] = p
		}
	}
	return g, i, o, planes, nil
}

func parsePlane(tag string) (pflow.Plane, error) {
	switch tag {
	case "XY", "xy":
		return pflow.XY, nil
	case "YZ", "yz":
		return pflow.YZ, nil
	case "ZX", "zx":
		return pflow.ZX, nil
	case "X", "x":
		return pflow.X, nil
	case "Y", "y":
		return pflow.Y, nil
	case "Z", "z":
		return pflow.Z, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPlane, tag)
	}
}
