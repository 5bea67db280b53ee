// Package mediumreader fetches a single Medium article, extracts its
// structured content from inconsistent or partially-truncated markup, and
// re-renders it as a clean, self-contained HTML document saved under a
// deterministic, collision-free filename.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, htmltemplate/, fs/).
package mediumreader
