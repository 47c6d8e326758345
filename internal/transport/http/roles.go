package http

import "oasis-lms/internal/domain"

// TeacherSet is the configured allow-list of teacher identities. Role
// tagging happens here at the boundary; the core trusts the tag and
// performs no authentication of its own.
type TeacherSet map[string]struct{}

func NewTeacherSet(ids []string) TeacherSet {
	set := make(TeacherSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// RoleFor tags a sender identity as teacher or student.
func (s TeacherSet) RoleFor(id string) domain.Role {
	if _, ok := s[id]; ok {
		return domain.RoleTeacher
	}
	return domain.RoleStudent
}
