package genealogy

import "sort"

// distanceItem pairs an id with its BFS depth.
type distanceItem struct {
	id    string
	depth int
}

// ancestorsWithDistance performs a breadth-first walk over ParentIDs,
// starting at id with distance 0. id itself is never included. Visited
// nodes are skipped so the walk terminates even over a graph a policy
// bug admitted a cycle into (the Validator reports that separately).
func (e *engine) ancestorsWithDistance(id string) map[string]int {
	result := make(map[string]int)
	if !e.store.has(id) {
		return result
	}

	visited := map[string]bool{id: true}
	queue := []distanceItem{{id: id, depth: 0}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		m, ok := e.store.get(cur.id)
		if !ok {
			continue
		}
		for _, pID := range m.ParentIDs {
			if visited[pID] {
				continue
			}
			visited[pID] = true
			d := cur.depth + 1
			result[pID] = d
			queue = append(queue, distanceItem{id: pID, depth: d})
		}
	}

	return result
}

// descendantsWithDistance is symmetric over ChildIDs.
func (e *engine) descendantsWithDistance(id string) map[string]int {
	result := make(map[string]int)
	if !e.store.has(id) {
		return result
	}

	visited := map[string]bool{id: true}
	queue := []distanceItem{{id: id, depth: 0}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		m, ok := e.store.get(cur.id)
		if !ok {
			continue
		}
		for _, cID := range m.ChildIDs {
			if visited[cID] {
				continue
			}
			visited[cID] = true
			d := cur.depth + 1
			result[cID] = d
			queue = append(queue, distanceItem{id: cID, depth: d})
		}
	}

	return result
}

// hasAncestorCycle reports whether id is reachable from its own direct
// parents by walking upward — i.e. whether id is its own ancestor. This
// is deliberately separate from ancestorsWithDistance, which seeds its
// visited set with id itself and therefore can never report id as one
// of its own results even when a policy bug admitted a cycle.
func (e *engine) hasAncestorCycle(id string) bool {
	m, ok := e.store.get(id)
	if !ok {
		return false
	}

	visited := make(map[string]bool)
	queue := append([]string(nil), m.ParentIDs...)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur == id {
			return true
		}
		if visited[cur] {
			continue
		}
		visited[cur] = true

		if p, ok := e.store.get(cur); ok {
			queue = append(queue, p.ParentIDs...)
		}
	}

	return false
}

// FindPath performs a breadth-first search over the undirected union of
// spouse, parent, and child edges. It returns the empty sequence if
// either endpoint is absent or unreachable; otherwise the sequence of
// ids from "from" to "to" inclusive, of minimum length. Ties are broken
// by insertion order of neighbors, which here means the fixed order
// spouses, then parents, then children.
func (e *engine) FindPath(from, to string) []string {
	if !e.store.has(from) || !e.store.has(to) {
		return []string{}
	}
	if from == to {
		return []string{from}
	}

	type queued struct {
		id   string
		path []string
	}

	visited := map[string]bool{from: true}
	queue := []queued{{id: from, path: []string{from}}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		m, ok := e.store.get(cur.id)
		if !ok {
			continue
		}

		neighbors := make([]string, 0, len(m.SpouseIDs)+len(m.ParentIDs)+len(m.ChildIDs))
		neighbors = append(neighbors, m.SpouseIDs...)
		neighbors = append(neighbors, m.ParentIDs...)
		neighbors = append(neighbors, m.ChildIDs...)

		for _, n := range neighbors {
			if visited[n] {
				continue
			}
			nextPath := append(append([]string(nil), cur.path...), n)
			if n == to {
				return nextPath
			}
			visited[n] = true
			queue = append(queue, queued{id: n, path: nextPath})
		}
	}

	return []string{}
}

// lcaResult names a lowest common ancestor and the distance from each
// of the two query members to it.
type lcaResult struct {
	id    string
	distA int
	distB int
}

// lowestCommonAncestors computes ancestor maps for both a and b,
// intersects them, and selects the ancestor minimizing distA+distB. Ties
// are broken lexicographically by id so the result is deterministic
// regardless of map iteration order.
func (e *engine) lowestCommonAncestors(a, b string) (lcaResult, bool) {
	ancA := e.ancestorsWithDistance(a)
	ancB := e.ancestorsWithDistance(b)

	var candidates []lcaResult
	for id, dA := range ancA {
		if dB, ok := ancB[id]; ok {
			candidates = append(candidates, lcaResult{id: id, distA: dA, distB: dB})
		}
	}
	if len(candidates) == 0 {
		return lcaResult{}, false
	}

	sort.Slice(candidates, func(i, j int) bool {
		si, sj := candidates[i], candidates[j]
		if si.distA+si.distB != sj.distA+sj.distB {
			return si.distA+si.distB < sj.distA+sj.distB
		}
		return si.id < sj.id
	})

	return candidates[0], true
}
