package model

import (
	"fmt"
	"strconv"
)

// AccessLevel is the three-tier privilege ranking. Higher values include
// every permission of the lower ones.
type AccessLevel uint8

const (
	LevelUser       AccessLevel = 1
	LevelAdmin      AccessLevel = 2
	LevelSuperAdmin AccessLevel = 3
)

func (l AccessLevel) Valid() bool {
	return l >= LevelUser && l <= LevelSuperAdmin
}

func (l AccessLevel) String() string {
	switch l {
	case LevelUser:
		return "user"
	case LevelAdmin:
		return "admin"
	case LevelSuperAdmin:
		return "superadmin"
	}
	return "level(" + strconv.Itoa(int(l)) + ")"
}

// Authorize permits iff the caller's level is at least the required one.
// Invalid caller levels are never permitted.
func Authorize(caller, required AccessLevel) bool {
	return caller.Valid() && caller >= required
}

// CreatableLevel returns the level a user created by creator actually gets
// when requested is asked for: min(requested, creator-1). A zero request
// means LevelUser. The request is downgraded, never rejected; the only
// failure is a creator that cannot create anyone.
func CreatableLevel(creator, requested AccessLevel) (AccessLevel, error) {
	if !creator.Valid() || creator <= LevelUser {
		return 0, fmt.Errorf("access level %s cannot create users", creator)
	}
	if requested == 0 {
		requested = LevelUser
	}
	ceiling := creator - 1
	if requested > ceiling {
		return ceiling, nil
	}
	return requested, nil
}
