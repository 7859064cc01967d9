// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ContentStore: Session-scoped persistence of cached payloads
//   - EncyclopediaClient: Search and article requests against the remote API
//   - MarkupConverter: Converts article HTML into the markdown subset
//   - SpanNormaliser: Turns markdown into FormattedSpan sequences
//   - SectionPruner: Drops trailing boilerplate sections from a span sequence
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or normaliser package
package driven
