package authz

import (
	"testing"

	"go-hospital-management/internal/domain/entity"
)

func TestAdminManagesEverything(t *testing.T) {
	for _, resource := range []Resource{
		ResourceDoctors, ResourcePatients, ResourceDepartments,
		ResourceAppointments, ResourceSchedules, ResourceMedicalRecords,
	} {
		if !Can(entity.RoleAdmin, resource, ActionManage) {
			t.Errorf("admin should manage %s", resource)
		}
	}
}

func TestPatientScopes(t *testing.T) {
	if !Can(entity.RolePatient, ResourceAppointments, ActionWrite) {
		t.Error("patient should book appointments")
	}
	if !Can(entity.RolePatient, ResourceMedicalRecords, ActionReadOwn) {
		t.Error("patient should read own medical records")
	}
	if Can(entity.RolePatient, ResourceMedicalRecords, ActionRead) {
		t.Error("patient must not read arbitrary medical records")
	}
	if Can(entity.RolePatient, ResourceAuditLogs, ActionRead) {
		t.Error("patient must not read audit logs")
	}
}

func TestNurseIsReadOnly(t *testing.T) {
	if Can(entity.RoleNurse, ResourceAppointments, ActionWrite) {
		t.Error("nurse must not book appointments")
	}
	if !Can(entity.RoleNurse, ResourceMedicalRecords, ActionRead) {
		t.Error("nurse should read medical records")
	}
}

func TestReceptionistBooksForPatients(t *testing.T) {
	if !Can(entity.RoleReceptionist, ResourceAppointments, ActionWrite) {
		t.Error("receptionist should book appointments")
	}
	if Can(entity.RoleReceptionist, ResourceMedicalRecords, ActionRead) {
		t.Error("receptionist must not read medical records")
	}
}

func TestUnknownRoleHasNoCapabilities(t *testing.T) {
	if got := Permitted("janitor", ResourceAppointments); len(got) != 0 {
		t.Errorf("unknown role should have no permitted actions, got %v", got)
	}
}
