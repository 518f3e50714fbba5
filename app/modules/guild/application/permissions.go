package guildservice

import (
	sharedtypes "github.com/aaravmaloo/blue-moon/app/shared/types"
	guildtypes "github.com/aaravmaloo/blue-moon/app/shared/types/guild"
)

// IsStaff reports whether the member holds staff privilege in the guild:
// the gateway-resolved administrator bit, or membership in the configured
// staff role. Missing privilege information means not staff.
func IsStaff(cfg *guildtypes.GuildConfig, member sharedtypes.MemberInfo) bool {
	if member.IsAdmin {
		return true
	}
	if cfg == nil {
		return false
	}
	return member.HasRole(cfg.StaffRoleID)
}
