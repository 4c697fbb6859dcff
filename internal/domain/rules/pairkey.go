package rules

// PairKey returns the canonical ordering of an unordered user pair.
// Both like directions map to the same (a, b), which is what the match
// uniqueness constraint is built on.
func PairKey(userA, userB string) (string, string) {
	if userA > userB {
		return userB, userA
	}
	return userA, userB
}
