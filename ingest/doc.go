// Package ingest bridges NATS subjects to the triage engine.
//
// The package includes:
//
//   - Ingestor: Queue-subscribed consumer for issue submissions and user
//     declarations, publishing assignment decisions back to NATS
//
// Submissions are deduplicated by content fingerprint so redelivered or
// repeated messages never reserve capacity twice.
package ingest
