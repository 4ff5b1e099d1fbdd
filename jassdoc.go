// Package jassdoc provides a terminal search tool for JASS API documentation.
// It fetches annotated declaration files (common.j, Blizzard.j, common.ai),
// extracts documented natives, and offers interactive fuzzy search with a
// rendered detail view for the selected entry.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., bleve/, tcell/, http/).
package jassdoc
