package app

import "oasis-lms/internal/domain"

// Session handles one inbound message for a user and produces a reply.
// Every code path resolves to a reply string; sessions never fail.
type Session interface {
	Handle(user, text string) string
}

// Router dispatches an inbound message to the teacher or student
// session based on the role tag supplied by the transport boundary.
// The outbound reply runs through the language adapter.
type Router struct {
	teacher  Session
	students Session
	adapter  LanguageAdapter
	language string
}

func NewRouter(teacher, students Session, adapter LanguageAdapter, language string) *Router {
	return &Router{
		teacher:  teacher,
		students: students,
		adapter:  adapter,
		language: language,
	}
}

// Route returns the reply for one inbound message.
func (r *Router) Route(sender string, role domain.Role, text string) string {
	var reply string
	if role == domain.RoleTeacher {
		reply = r.teacher.Handle(sender, text)
	} else {
		reply = r.students.Handle(sender, text)
	}
	if r.adapter != nil {
		reply = r.adapter.Adapt(reply, r.language)
	}
	return reply
}

// Core bundles the router with its session state. One Core is
// constructed at process start and shared by every transport; tests
// build fresh instances for isolation.
type Core struct {
	Router   *Router
	Students *StudentSession
	Teacher  *TeacherSession
}

// NewCore builds a fully wired session router. archive may be nil.
func NewCore(archive Archive, adapter LanguageAdapter, language string) *Core {
	students := NewStudentSession(NewHistoryLog(), NewNotificationQueue(), NewQuizRegistry(), archive)
	teacher := NewTeacherSession(students)
	return &Core{
		Router:   NewRouter(teacher, students, adapter, language),
		Students: students,
		Teacher:  teacher,
	}
}
