package genealogy

import "fmt"

// Report is the result of a full integrity sweep: accumulated errors
// and warnings rather than a short-circuited first failure, because the
// Validator's use case is diagnosis of an entire payload at once.
type Report struct {
	Errors   []string
	Warnings []string
}

// OK reports whether the sweep found no errors. Warnings do not affect
// OK — an orphan (root) is legitimate.
func (r Report) OK() bool {
	return len(r.Errors) == 0
}

// Validate sweeps the whole store once, checking referential integrity,
// edge symmetry, and acyclicity, and flags parentless members as
// orphans. It is the canonical acceptance gate for a deserialized
// payload (see FromSerialized); callers that skip it do so at their own
// risk.
func (e *engine) Validate() Report {
	var report Report

	for _, m := range e.store.values() {
		for _, sID := range m.SpouseIDs {
			s, ok := e.store.get(sID)
			if !ok {
				report.Errors = append(report.Errors, fmt.Sprintf(
					"[Integrity] member %s has dangling spouse reference %s", m.ID, sID))
				continue
			}
			if !containsID(s.SpouseIDs, m.ID) {
				report.Errors = append(report.Errors, fmt.Sprintf(
					"[Integrity] spouse edge %s -> %s is not symmetric", m.ID, sID))
			}
		}

		for _, pID := range m.ParentIDs {
			p, ok := e.store.get(pID)
			if !ok {
				report.Errors = append(report.Errors, fmt.Sprintf(
					"[Integrity] member %s has dangling parent reference %s", m.ID, pID))
				continue
			}
			if !containsID(p.ChildIDs, m.ID) {
				report.Errors = append(report.Errors, fmt.Sprintf(
					"[Integrity] parent-child edge %s -> %s is missing its reverse", pID, m.ID))
			}
		}

		for _, cID := range m.ChildIDs {
			c, ok := e.store.get(cID)
			if !ok {
				report.Errors = append(report.Errors, fmt.Sprintf(
					"[Integrity] member %s has dangling child reference %s", m.ID, cID))
				continue
			}
			if !containsID(c.ParentIDs, m.ID) {
				report.Errors = append(report.Errors, fmt.Sprintf(
					"[Integrity] parent-child edge %s -> %s is missing its reverse", m.ID, cID))
			}
		}

		if e.hasAncestorCycle(m.ID) {
			report.Errors = append(report.Errors, fmt.Sprintf(
				"[Circular] member %s is its own ancestor", m.ID))
		}

		if len(m.ParentIDs) == 0 {
			report.Warnings = append(report.Warnings, fmt.Sprintf(
				"[Orphan] member %s has no recorded parents", m.ID))
		}
	}

	return report
}
