package topology

import (
	"log/slog"
)

// Checker validates topology graphs before a solve. Implementations report
// plain booleans: a failed check is a soft rejection of the input, not an
// error condition.
type Checker interface {
	// CheckInfra determines if the infrastructure topology is structurally sound.
	CheckInfra(infra *Infrastructure) bool
	// CheckService determines if the service topology is structurally sound.
	CheckService(svc *Service) bool
}

// GraphChecker is the default Checker. It verifies node ID uniqueness,
// non-negative numeric attributes and that links reference existing nodes.
type GraphChecker struct{}

// NewGraphChecker creates the default structural topology checker.
func NewGraphChecker() *GraphChecker {
	return &GraphChecker{}
}

func (c *GraphChecker) CheckInfra(infra *Infrastructure) bool {
	if infra == nil {
		return false
	}
	ids, ok := uniqueNodeIDs(infra.Nodes)
	if !ok {
		return false
	}
	for _, n := range infra.Nodes {
		var attrs HostAttrs
		if err := n.DecodeAttrs(&attrs); err != nil {
			slog.Debug("Infrastructure node has malformed attributes.", "node", n.ID, "err", err)
			return false
		}
		if attrs.Capacity < 0 || attrs.FixedCost < 0 || attrs.UnitCost < 0 {
			slog.Debug("Infrastructure node has negative capacity or cost.", "node", n.ID)
			return false
		}
	}
	return linksResolve(infra.Links, ids)
}

func (c *GraphChecker) CheckService(svc *Service) bool {
	if svc == nil {
		return false
	}
	ids, ok := uniqueNodeIDs(svc.Nodes)
	if !ok {
		return false
	}
	for _, n := range svc.Nodes {
		var attrs VNFAttrs
		if err := n.DecodeAttrs(&attrs); err != nil {
			slog.Debug("Service node has malformed attributes.", "node", n.ID, "err", err)
			return false
		}
		if attrs.Weight < 0 {
			slog.Debug("Service node has negative demand weight.", "node", n.ID)
			return false
		}
	}
	return linksResolve(svc.Links, ids)
}

func uniqueNodeIDs(nodes []Node) (map[string]struct{}, bool) {
	ids := make(map[string]struct{}, len(nodes))
	for _, n := range nodes {
		if n.ID == "" {
			slog.Debug("Topology node is missing an ID.")
			return nil, false
		}
		if _, exists := ids[n.ID]; exists {
			slog.Debug("Duplicate node ID in topology.", "node", n.ID)
			return nil, false
		}
		ids[n.ID] = struct{}{}
	}
	return ids, true
}

func linksResolve(links []Link, ids map[string]struct{}) bool {
	for _, l := range links {
		if _, ok := ids[l.From]; !ok {
			slog.Debug("Link references unknown node.", "node", l.From)
			return false
		}
		if _, ok := ids[l.To]; !ok {
			slog.Debug("Link references unknown node.", "node", l.To)
			return false
		}
	}
	return true
}
