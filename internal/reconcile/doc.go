// Package reconcile maps logical matches onto physical transmitter files
// and copies them into the destination folder under their new names.
//
// Metadata and disk drift apart in practice (".WAV" in the log, ".wav" on
// disk), so resolution goes through a case-insensitive index of the source
// directory built once per run, before any copy starts. The copy loop has
// batch semantics: a missing or uncopyable file is recorded and the batch
// continues, so one run always yields the complete picture.
package reconcile
