package authz

import "go-hospital-management/internal/domain/entity"

// Resource names the protected surfaces of the API.
type Resource string

const (
	ResourceDoctors        Resource = "doctors"
	ResourcePatients       Resource = "patients"
	ResourceDepartments    Resource = "departments"
	ResourceAppointments   Resource = "appointments"
	ResourceSchedules      Resource = "schedules"
	ResourceMedicalRecords Resource = "medical_records"
	ResourceAuditLogs      Resource = "audit_logs"
)

// Action names what an actor may do with a resource. Own-scoped
// actions cover only records belonging to the actor; usecases still
// enforce the ownership itself.
type Action string

const (
	ActionRead    Action = "read"
	ActionReadOwn Action = "read_own"
	ActionWrite   Action = "write"
	ActionManage  Action = "manage"
)

// capabilities is the single role permission table. Handlers and
// middleware consult it through Can instead of comparing role IDs
// inline, so the full access matrix is visible in one place.
var capabilities = map[string]map[Resource][]Action{
	entity.RoleAdmin: {
		ResourceDoctors:        {ActionRead, ActionWrite, ActionManage},
		ResourcePatients:       {ActionRead, ActionWrite, ActionManage},
		ResourceDepartments:    {ActionRead, ActionWrite, ActionManage},
		ResourceAppointments:   {ActionRead, ActionWrite, ActionManage},
		ResourceSchedules:      {ActionRead, ActionWrite, ActionManage},
		ResourceMedicalRecords: {ActionRead, ActionWrite, ActionManage},
		ResourceAuditLogs:      {ActionRead},
	},
	entity.RoleDoctor: {
		ResourceDoctors:        {ActionRead, ActionReadOwn},
		ResourcePatients:       {ActionRead},
		ResourceDepartments:    {ActionRead},
		ResourceAppointments:   {ActionReadOwn, ActionWrite},
		ResourceSchedules:      {ActionRead, ActionReadOwn, ActionWrite},
		ResourceMedicalRecords: {ActionRead, ActionWrite},
	},
	entity.RoleNurse: {
		ResourceDoctors:        {ActionRead},
		ResourcePatients:       {ActionRead},
		ResourceDepartments:    {ActionRead},
		ResourceAppointments:   {ActionRead},
		ResourceSchedules:      {ActionRead},
		ResourceMedicalRecords: {ActionRead},
	},
	entity.RoleReceptionist: {
		ResourceDoctors:      {ActionRead},
		ResourcePatients:     {ActionRead, ActionWrite},
		ResourceDepartments:  {ActionRead},
		ResourceAppointments: {ActionRead, ActionWrite},
		ResourceSchedules:    {ActionRead},
	},
	entity.RolePatient: {
		ResourceDoctors:        {ActionRead},
		ResourceDepartments:    {ActionRead},
		ResourceAppointments:   {ActionReadOwn, ActionWrite},
		ResourceSchedules:      {ActionRead},
		ResourceMedicalRecords: {ActionReadOwn},
	},
}

// Permitted returns the actions a role may perform on a resource.
func Permitted(role string, resource Resource) []Action {
	return capabilities[role][resource]
}

// Can reports whether the role may perform the action on the resource.
func Can(role string, resource Resource, action Action) bool {
	for _, a := range Permitted(role, resource) {
		if a == action {
			return true
		}
	}
	return false
}
