// Package topology defines the infrastructure and service graph models consumed
// by the placement solver, along with their YAML codec and structural checkers.
package topology

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/mitchellh/mapstructure"
)

// Attribute keys the solver interprets. Any other keys in a node's attribute
// bag are carried through untouched.
const (
	// AttrCapacity is the hosting capacity of an infrastructure node.
	AttrCapacity = "capacity"
	// AttrFixedCost is the one-off cost of using an infrastructure node at all.
	AttrFixedCost = "fixed_cost"
	// AttrUnitCost is the cost per unit of hosted demand on an infrastructure node.
	AttrUnitCost = "unit_cost"
	// AttrWeight is the demand magnitude of a service node.
	AttrWeight = "weight"
	// AttrLocality restricts a service node to a named set of infrastructure node IDs.
	// Absence of the key means the node is unconstrained.
	AttrLocality = "locality"
)

// Node is one node of either topology graph: an ID plus an opaque attribute bag.
// The solver only interprets the well-known attribute keys above; everything
// else rides along for external tooling.
type Node struct {
	ID    string         `yaml:"id"`
	Attrs map[string]any `yaml:"attrs,omitempty"`
}

// DecodeAttrs decodes the node's attribute bag into a typed struct using
// mapstructure tags. Numeric YAML values decode into float64 fields regardless
// of whether they were written as integers.
func (n Node) DecodeAttrs(out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("create attribute decoder: %w", err)
	}
	if err = dec.Decode(n.Attrs); err != nil {
		return fmt.Errorf("decode attributes of node '%s': %w", n.ID, err)
	}
	return nil
}

// Link is an undirected edge between two nodes of the same graph. Links are not
// interpreted by the solver but are checked for structural sanity.
type Link struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Infrastructure is the graph of capacitated hosts demand can be placed on.
type Infrastructure struct {
	Nodes []Node `yaml:"nodes"`
	Links []Link `yaml:"links,omitempty"`
}

// HostAttrs is the typed view of an infrastructure node's attribute bag.
type HostAttrs struct {
	Capacity  float64 `mapstructure:"capacity"`
	FixedCost float64 `mapstructure:"fixed_cost"`
	UnitCost  float64 `mapstructure:"unit_cost"`
}

// Service is the graph of demand units (VNF instances) to be placed.
type Service struct {
	Nodes []Node `yaml:"vnfs"`
	Links []Link `yaml:"links,omitempty"`
}

// VNFAttrs is the typed view of a service node's attribute bag.
type VNFAttrs struct {
	Weight   float64  `mapstructure:"weight"`
	Locality []string `mapstructure:"locality"`
}

// Locality extracts the locality constraint from a raw attribute bag.
// The second return value reports whether the constraint is present at all:
// an absent key means unconstrained, while a present but empty list means
// nothing is permitted.
func Locality(attrs map[string]any) ([]string, bool) {
	raw, ok := attrs[AttrLocality]
	if !ok {
		return nil, false
	}
	switch v := raw.(type) {
	case []string:
		return v, true
	case []any:
		ids := make([]string, 0, len(v))
		for _, e := range v {
			ids = append(ids, fmt.Sprint(e))
		}
		return ids, true
	default:
		return []string{fmt.Sprint(v)}, true
	}
}

// ParseInfrastructure decodes an infrastructure topology from YAML.
func ParseInfrastructure(data []byte) (*Infrastructure, error) {
	var infra Infrastructure
	if err := yaml.Unmarshal(data, &infra); err != nil {
		return nil, fmt.Errorf("parse infrastructure topology: %w", err)
	}
	return &infra, nil
}

// ParseService decodes a service topology from YAML.
func ParseService(data []byte) (*Service, error) {
	var svc Service
	if err := yaml.Unmarshal(data, &svc); err != nil {
		return nil, fmt.Errorf("parse service topology: %w", err)
	}
	return &svc, nil
}

// LoadInfrastructure reads and decodes an infrastructure topology file.
func LoadInfrastructure(path string) (*Infrastructure, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read infrastructure topology '%s': %w", path, err)
	}
	return ParseInfrastructure(data)
}

// LoadService reads and decodes a service topology file.
func LoadService(path string) (*Service, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read service topology '%s': %w", path, err)
	}
	return ParseService(data)
}
