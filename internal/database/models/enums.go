package models

// UserRole defines the access level of a user within a company
type UserRole string

const (
	UserRoleMember     UserRole = "member"
	UserRoleHR         UserRole = "hr"
	UserRoleAdmin      UserRole = "admin"
	UserRoleSuperAdmin UserRole = "superadmin"
)

// TaskStatus defines the workflow column of a task
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusReview     TaskStatus = "review"
	TaskStatusDone       TaskStatus = "done"
)

// TaskPriority defines how urgent a task is
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleMember, UserRoleHR, UserRoleAdmin, UserRoleSuperAdmin:
		return true
	}
	return false
}

// CanManage reports whether the role may edit other users, teams and tasks.
func (r UserRole) CanManage() bool {
	return r == UserRoleAdmin || r == UserRoleSuperAdmin
}

// CanViewReports reports whether the role may read the company dashboards.
func (r UserRole) CanViewReports() bool {
	return r == UserRoleHR || r.CanManage()
}

// IsValid checks if the TaskStatus is valid
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusReview, TaskStatusDone:
		return true
	}
	return false
}

// AllTaskStatuses lists statuses in board order.
func AllTaskStatuses() []TaskStatus {
	return []TaskStatus{TaskStatusTodo, TaskStatusInProgress, TaskStatusReview, TaskStatusDone}
}

// IsValid checks if the TaskPriority is valid
func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}
