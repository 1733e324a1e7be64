package service

import (
	"slices"

	"project-admin/internal/model"
)

type Action string

const (
	ReadOwnProjects Action = "projects:read_own"
	ReadAllProjects Action = "projects:read_all"
	CreateProject   Action = "projects:create"
	UpdateProject   Action = "projects:update"
	DeleteProject   Action = "projects:delete"
	AssignUsers     Action = "projects:assign"
	CreateUser      Action = "users:create"
	DeleteUser      Action = "users:delete"
	ListUsers       Action = "users:list"
)

// Actions lists every action the policy knows about.
var Actions = []Action{
	ReadOwnProjects,
	ReadAllProjects,
	CreateProject,
	UpdateProject,
	DeleteProject,
	AssignUsers,
	CreateUser,
	DeleteUser,
	ListUsers,
}

// Resource narrows an action to one project. The zero value means the
// collection as a whole; list queries do their own scoping.
type Resource struct {
	ProjectID   int
	AssigneeIDs []int
}

func ProjectResource(projectID int, assignments []model.Assignment) Resource {
	ids := make([]int, 0, len(assignments))
	for _, a := range assignments {
		ids = append(ids, a.UserID)
	}
	return Resource{ProjectID: projectID, AssigneeIDs: ids}
}

// Can reports whether id may perform action on res. Admins may do
// everything, users may only read projects they are assigned to, and
// anonymous callers may do nothing.
func Can(id Identity, action Action, res Resource) bool {
	if !id.Authenticated() || !slices.Contains(Actions, action) {
		return false
	}
	switch id.Role {
	case model.RoleAdmin:
		return true
	case model.RoleUser:
		if action != ReadOwnProjects {
			return false
		}
		if res.ProjectID == 0 {
			return true
		}
		return slices.Contains(res.AssigneeIDs, id.UserID)
	}
	return false
}

// Authorize is Can with the failure reason: ErrUnauthenticated for
// anonymous callers, ErrForbidden otherwise.
func Authorize(id Identity, action Action, res Resource) error {
	if !id.Authenticated() {
		return ErrUnauthenticated
	}
	if !Can(id, action, res) {
		return ErrForbidden
	}
	return nil
}
