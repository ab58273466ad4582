package graph

// MigrateLegacy upgrades nodes saved before ports existed. Graphs from that
// era carry nodes with no port lists at all; each such node gets one generic
// input port and one generic output port so the graph validates under the
// port-based model.
//
// A node declaring any port on either side is not legacy and is left
// untouched. Sources and sinks legitimately have an empty list on one side,
// so only a node with both lists empty is migrated. The upgrade is one-way
// and idempotent, and returns the number of nodes changed.
func (g *Graph) MigrateLegacy() int {
	migrated := 0
	for _, n := range g.nodes {
		if len(n.InputPorts) > 0 || len(n.OutputPorts) > 0 {
			continue
		}
		n.InputPorts = []Port{DefaultInput()}
		n.OutputPorts = []Port{DefaultOutput()}
		migrated++
	}
	return migrated
}
