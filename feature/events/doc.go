// Package events syncs trade-show projects into the local event table.
//
// Selection is two-staged: a project group qualifies when its name starts
// with the event prefix, and a project inside a qualifying group must pass
// the exclusion-keyword list, must not be an exhibitor sub-project, and
// needs plausible start and end dates. The venue comes from a tagged
// custom field on the project.
package events
