package guildservice

import "errors"

var (
	// ErrNotStaff marks a request by a member without staff privilege.
	ErrNotStaff = errors.New("requester is not staff")
	// ErrInvalidGuildID marks a request with an empty guild ID.
	ErrInvalidGuildID = errors.New("invalid guild ID")
	// ErrInvalidPattern marks a regex filter that does not compile.
	ErrInvalidPattern = errors.New("invalid regex pattern")
	// ErrPatternNotFound marks a removal of an unknown regex filter.
	ErrPatternNotFound = errors.New("regex pattern not found")
)
