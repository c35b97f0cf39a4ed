package domain

import "testing"

func TestAuthorize(t *testing.T) {
	t.Parallel()

	anon := Caller{}
	user := Caller{ID: "u1", Role: "user", Authenticated: true}
	staff := Caller{ID: "s1", Role: "user", IsStaff: true, Authenticated: true}
	admin := Caller{ID: "a1", Role: "admin", Authenticated: true}
	super := Caller{ID: "su1", Role: "admin", IsSuperuser: true, Authenticated: true}

	cases := []struct {
		name    string
		caller  Caller
		level   AccessLevel
		ownerID string
		write   bool
		want    bool
	}{
		{"public read anon", anon, LevelPublic, "", false, true},
		{"public write anon", anon, LevelPublic, "", true, true},

		{"owner level read anon", anon, LevelOwnerOrAdmin, "u1", false, true},
		{"owner level write anon", anon, LevelOwnerOrAdmin, "u1", true, false},
		{"owner writes own", user, LevelOwnerOrAdmin, "u1", true, true},
		{"non-owner cannot write", user, LevelOwnerOrAdmin, "other", true, false},
		{"admin writes any", admin, LevelOwnerOrAdmin, "other", true, true},
		{"staff writes any", staff, LevelOwnerOrAdmin, "other", true, true},

		{"admin-or-staff rejects plain user", user, LevelAdminOrStaff, "", false, false},
		{"admin-or-staff rejects anon", anon, LevelAdminOrStaff, "", false, false},
		{"admin-or-staff allows admin role", admin, LevelAdminOrStaff, "", true, true},
		{"admin-or-staff allows staff flag", staff, LevelAdminOrStaff, "", true, true},

		{"admin-only rejects admin role without superuser", admin, LevelAdminOnly, "", true, false},
		{"admin-only allows superuser", super, LevelAdminOnly, "", true, true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Authorize(tc.caller, tc.level, tc.ownerID, tc.write); got != tc.want {
				t.Fatalf("Authorize(%+v, %s, %q, write=%v) = %v, want %v",
					tc.caller, tc.level, tc.ownerID, tc.write, got, tc.want)
			}
		})
	}
}

func TestAuthorize_UnknownLevelDenies(t *testing.T) {
	t.Parallel()

	super := Caller{ID: "su1", Role: "admin", IsSuperuser: true, Authenticated: true}
	if Authorize(super, AccessLevel(99), "", false) {
		t.Fatalf("unknown level must deny")
	}
}
