// Package pathkit wraps the host filesystem's path and metadata primitives
// behind an immutable Path value type.
//
// Capabilities:
//   - Well-known sandbox directories (documents, library, caches,
//     application support, temp) resolved by identifier
//   - Pure path composition (Resource, Folder) with no disk access
//   - Existence and classification queries from single stat calls
//   - Directory creation, recursive removal, backup-exclusion marking
//   - One-level listing, recursive glob, recursive subtree size
//   - Human-readable byte formatting and raw (optionally memory-mapped) reads
//
// Every disk-touching operation routes through a fsys.FS implementation; the
// default is the real OS, and fsys.MemFS substitutes an in-memory tree for
// tests. Accessors documented as best-effort (Attributes, MimeType,
// DetectMimeType, DisableAutoBackup, Size) collapse failures to an absent or
// zero result instead of returning errors.
package pathkit
