package domain

import "testing"

func TestParseRequestStatus(t *testing.T) {
	for _, valid := range []string{"Pending", "Scheduled", "In Progress", "Completed"} {
		status, err := ParseRequestStatus(valid)
		if err != nil {
			t.Errorf("%q must parse: %v", valid, err)
		}
		if string(status) != valid {
			t.Errorf("round trip broke: %q -> %q", valid, status)
		}
	}

	for _, invalid := range []string{"", "pending", "InProgress", "Done", "SCHEDULED"} {
		if _, err := ParseRequestStatus(invalid); err == nil {
			t.Errorf("%q must be rejected", invalid)
		}
	}
}

func TestParseRequestUrgency(t *testing.T) {
	for _, valid := range []string{"Low", "Medium", "High", "Inspection Showstopper"} {
		urgency, err := ParseRequestUrgency(valid)
		if err != nil {
			t.Errorf("%q must parse: %v", valid, err)
		}
		if string(urgency) != valid {
			t.Errorf("round trip broke: %q -> %q", valid, urgency)
		}
	}

	for _, invalid := range []string{"", "low", "Critical", "Showstopper"} {
		if _, err := ParseRequestUrgency(invalid); err == nil {
			t.Errorf("%q must be rejected", invalid)
		}
	}
}

func TestParseUserRole(t *testing.T) {
	for _, valid := range []string{"admin", "user", "guest"} {
		role, err := ParseUserRole(valid)
		if err != nil {
			t.Errorf("%q must parse: %v", valid, err)
		}
		if string(role) != valid {
			t.Errorf("round trip broke: %q -> %q", valid, role)
		}
	}

	for _, invalid := range []string{"", "Admin", "superuser"} {
		if _, err := ParseUserRole(invalid); err == nil {
			t.Errorf("%q must be rejected", invalid)
		}
	}
}

func TestPrincipalIsAnonymous(t *testing.T) {
	if !Anonymous.IsAnonymous() {
		t.Error("zero principal must be anonymous")
	}
	if Principal("principal-agent").IsAnonymous() {
		t.Error("named principal must not be anonymous")
	}
}
