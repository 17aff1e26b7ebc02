package domain

import "testing"

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{"doctor", RoleDoctor, false},
		{"admin", RoleAdmin, false},
		{"DOCTOR", RoleDoctor, false},
		{" admin ", RoleAdmin, false},
		{"nurse", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseRole(tt.in)
		if tt.wantErr {
			if err != ErrInvalidRole {
				t.Errorf("ParseRole(%q): expected ErrInvalidRole, got %v", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseRole(%q) = %s, %v; want %s", tt.in, got, err, tt.want)
		}
	}
}

func TestRole_DashboardPath(t *testing.T) {
	if got := RoleDoctor.DashboardPath(); got != "/dashboard/doctor" {
		t.Fatalf("doctor dashboard: %s", got)
	}
	if got := RoleAdmin.DashboardPath(); got != "/dashboard/admin" {
		t.Fatalf("admin dashboard: %s", got)
	}
}

func TestProfileNameFromEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"jane.mwangi@clinic.co.ke", "jane.mwangi"},
		{"admin@afyakuu.org", "admin"},
		{"no-at-sign", "no-at-sign"},
		{"@leading", "@leading"},
	}
	for _, tt := range tests {
		if got := ProfileNameFromEmail(tt.in); got != tt.want {
			t.Errorf("ProfileNameFromEmail(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
