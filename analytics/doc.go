// Package analytics computes registration analytics for an assembly.
//
// An analytics report cross-references the expected participants of an
// assembly (local committees split into "Pleno" and "Não-pleno", plus the
// organization-wide executive board and regional coordinator rosters) against
// the assembly's active registrations. Participant rows are deduplicated by
// their trimmed participant id, keeping the first row seen.
//
// Project is the pure aggregation step. Aggregator fetches the inputs
// concurrently from a Source and hands them to Project.
package analytics
