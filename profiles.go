package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/sadakpramodh/tom-location/types"
)

// maxProfiles bounds the numbered env var scan. The system targets tens of
// tracked identities at most.
const maxProfiles = 32

// loadProfiles reads tracked identities from numbered environment
// variables:
//
//	PROFILE_1_NAME, PROFILE_1_EMAIL, PROFILE_1_DEVICE_ID (optional),
//	PROFILE_1_ICON_BASE64 / _ICON_FILE / _ICON_URL (optional), then
//	PROFILE_2_..., and so on. Gaps terminate the scan.
//
// Profiles without an email are kept (they render nothing) so the numbering
// stays aligned with the operator's config.
func loadProfiles(icons *iconRegistry) []types.Profile {
	profiles := make([]types.Profile, 0, 4)

	for n := 1; n <= maxProfiles; n++ {
		prefix := fmt.Sprintf("PROFILE_%d", n)
		name := strings.TrimSpace(os.Getenv(prefix + "_NAME"))
		email := strings.TrimSpace(os.Getenv(prefix + "_EMAIL"))
		if name == "" && email == "" {
			break
		}
		if name == "" {
			name = fmt.Sprintf("Profile %d", n)
		}

		profiles = append(profiles, types.Profile{
			Display:     name,
			Email:       email,
			ForceDevice: strings.TrimSpace(os.Getenv(prefix + "_DEVICE_ID")),
			Icon:        icons.resolve(prefix),
		})
	}

	if len(profiles) > 0 {
		log.Printf("✅ Loaded %d profiles", len(profiles))
	}
	return profiles
}
