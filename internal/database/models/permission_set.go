package models

import "sort"

// PermissionSet is an unordered set of global permissions
type PermissionSet map[GlobalPermission]struct{}

// NewPermissionSet builds a set from the given permissions
func NewPermissionSet(permissions ...GlobalPermission) PermissionSet {
	set := make(PermissionSet, len(permissions))
	for _, p := range permissions {
		set[p] = struct{}{}
	}
	return set
}

// Has reports whether p is in the set
func (s PermissionSet) Has(p GlobalPermission) bool {
	_, ok := s[p]
	return ok
}

// Intersects reports whether the two sets share at least one permission
func (s PermissionSet) Intersects(other PermissionSet) bool {
	small, large := s, other
	if len(small) > len(large) {
		small, large = large, small
	}
	for p := range small {
		if large.Has(p) {
			return true
		}
	}
	return false
}

// Slice returns the permissions sorted by name
func (s PermissionSet) Slice() []GlobalPermission {
	out := make([]GlobalPermission, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Strings returns the permission names sorted
func (s PermissionSet) Strings() []string {
	perms := s.Slice()
	out := make([]string, len(perms))
	for i, p := range perms {
		out[i] = string(p)
	}
	return out
}
