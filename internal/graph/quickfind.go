package graph

// mergeGroup is one component under construction. Vertices in the same
// group share the same *mergeGroup pointer; pointer equality is the
// membership test.
type mergeGroup struct {
	members []string
}

// ComponentsQuickFind finds connected components by set merging: every
// vertex points at a shared group record, and uniting two groups repoints
// the smaller group's vertices at the larger record. Melding by size bounds
// the number of times any vertex is repointed to O(log n) over the run.
func ComponentsQuickFind(edges []Edge, vertices []string) []Component {
	groups := make(map[string]*mergeGroup, 2*len(edges)+len(vertices))
	ensure := func(v string) {
		if _, ok := groups[v]; !ok {
			groups[v] = &mergeGroup{members: []string{v}}
		}
	}
	for _, e := range edges {
		ensure(e.U)
		ensure(e.V)
	}
	for _, v := range vertices {
		ensure(v)
	}

	for _, e := range edges {
		gu := groups[e.U]
		gv := groups[e.V]
		if gu == gv {
			continue
		}
		if len(gu.members) < len(gv.members) {
			gu, gv = gv, gu
		}
		for _, v := range gv.members {
			groups[v] = gu
		}
		gu.members = append(gu.members, gv.members...)
	}

	seen := make(map[*mergeGroup]bool)
	var comps []Component
	for _, g := range groups {
		if seen[g] {
			continue
		}
		seen[g] = true
		comps = append(comps, Component(g.members))
	}
	return comps
}

// ComponentsQuickFindClassic finds connected components by classic
// quick-find: each vertex stores its representative vertex directly, and
// each representative owns the chain of its component's members. Uniting
// moves the smaller chain into the larger and relabels the moved vertices.
// Same partition as ComponentsQuickFind, different bookkeeping.
func ComponentsQuickFindClassic(edges []Edge, vertices []string) []Component {
	reps := make(map[string]string, 2*len(edges)+len(vertices))
	chains := make(map[string][]string)
	ensure := func(v string) {
		if _, ok := reps[v]; !ok {
			reps[v] = v
			chains[v] = []string{v}
		}
	}
	for _, e := range edges {
		ensure(e.U)
		ensure(e.V)
	}
	for _, v := range vertices {
		ensure(v)
	}

	for _, e := range edges {
		ru := reps[e.U]
		rv := reps[e.V]
		if ru == rv {
			continue
		}
		if len(chains[ru]) < len(chains[rv]) {
			ru, rv = rv, ru
		}
		for _, v := range chains[rv] {
			reps[v] = ru
		}
		chains[ru] = append(chains[ru], chains[rv]...)
		delete(chains, rv)
	}

	// Only representatives still own a chain.
	comps := make([]Component, 0, len(chains))
	for _, chain := range chains {
		comps = append(comps, Component(chain))
	}
	return comps
}
