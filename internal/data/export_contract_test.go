package data

import (
	"github.com/seekwell/jobboard/internal/core"
)

// Compile-time checks that the repositories satisfy their core interfaces.
var (
	_ core.UserRepository        = (*UserRepo)(nil)
	_ core.ListingRepository     = (*ListingRepo)(nil)
	_ core.ApplicationRepository = (*ApplicationRepo)(nil)
)
