package model

import "testing"

func TestAuthorize(t *testing.T) {
	cases := []struct {
		caller, required AccessLevel
		want             bool
	}{
		{LevelUser, LevelUser, true},
		{LevelUser, LevelAdmin, false},
		{LevelAdmin, LevelUser, true},
		{LevelAdmin, LevelAdmin, true},
		{LevelAdmin, LevelSuperAdmin, false},
		{LevelSuperAdmin, LevelSuperAdmin, true},
		{0, LevelUser, false},
		{7, LevelUser, false},
	}
	for _, c := range cases {
		if got := Authorize(c.caller, c.required); got != c.want {
			t.Fatalf("Authorize(%d,%d)=%v, want %v", c.caller, c.required, got, c.want)
		}
	}
}

func TestCreatableLevel(t *testing.T) {
	cases := []struct {
		creator, requested, want AccessLevel
	}{
		{LevelAdmin, LevelAdmin, LevelUser},
		{LevelAdmin, LevelSuperAdmin, LevelUser},
		{LevelAdmin, LevelUser, LevelUser},
		{LevelAdmin, 0, LevelUser},
		{LevelSuperAdmin, LevelSuperAdmin, LevelAdmin},
		{LevelSuperAdmin, LevelAdmin, LevelAdmin},
		{LevelSuperAdmin, 9, LevelAdmin},
	}
	for _, c := range cases {
		got, err := CreatableLevel(c.creator, c.requested)
		if err != nil {
			t.Fatalf("CreatableLevel(%d,%d) error: %v", c.creator, c.requested, err)
		}
		if got != c.want {
			t.Fatalf("CreatableLevel(%d,%d)=%d, want %d", c.creator, c.requested, got, c.want)
		}
		if got >= c.creator {
			t.Fatalf("created level %d not below creator %d", got, c.creator)
		}
	}
	if _, err := CreatableLevel(LevelUser, LevelUser); err == nil {
		t.Fatalf("expected users to be unable to create users")
	}
}

func TestAccessLevelString(t *testing.T) {
	if LevelSuperAdmin.String() != "superadmin" || AccessLevel(5).String() != "level(5)" {
		t.Fatalf("unexpected names %s %s", LevelSuperAdmin, AccessLevel(5))
	}
}
