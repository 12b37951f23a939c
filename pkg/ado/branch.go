package ado

import "strings"

// BranchRefPrefix is the namespace of fully qualified branch references.
const BranchRefPrefix = "refs/heads/"

// CanonicalizeBranchName returns the fully qualified reference for a branch.
// Names that already carry the prefix are returned unchanged.
func CanonicalizeBranchName(branchName string) string {
	if strings.HasPrefix(branchName, BranchRefPrefix) {
		return branchName
	}

	return BranchRefPrefix + branchName
}
