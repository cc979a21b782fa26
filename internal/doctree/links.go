package doctree

import "sort"

// Anchors returns the set of section IDs defined anywhere in roots.
func Anchors(roots ...*Node) map[string]struct{} {
	ids := make(map[string]struct{})
	for _, root := range roots {
		Walk(root, func(n *Node) bool {
			if n.ID != "" {
				ids[n.ID] = struct{}{}
			}
			return true
		})
	}
	return ids
}

// DanglingRefs returns the sorted, de-duplicated reference targets in roots
// that no section in roots defines.
func DanglingRefs(roots ...*Node) []string {
	ids := Anchors(roots...)
	seen := make(map[string]struct{})
	var out []string
	for _, root := range roots {
		Walk(root, func(n *Node) bool {
			if n.RefID == "" {
				return true
			}
			if _, ok := ids[n.RefID]; ok {
				return true
			}
			if _, dup := seen[n.RefID]; !dup {
				seen[n.RefID] = struct{}{}
				out = append(out, n.RefID)
			}
			return true
		})
	}
	sort.Strings(out)
	return out
}
