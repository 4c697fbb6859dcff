package rules

import "strings"

// ProfileComplete reports whether a profile is visible in discovery.
// A profile counts as complete once it has an age, a non-empty bio,
// at least one red flag and at least one photo. The flag is always
// recomputed from these inputs, never stored independently.
func ProfileComplete(age *int, bio string, redFlags, photos []string) bool {
	return age != nil &&
		strings.TrimSpace(bio) != "" &&
		len(redFlags) > 0 &&
		len(photos) > 0
}
