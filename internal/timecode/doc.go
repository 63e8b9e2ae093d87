// Package timecode converts SMPTE-style timecode strings into scalar seconds.
//
// A timecode is four numeric fields (hours, minutes, seconds, frames)
// separated by any of ':', ';' or '.'. The frames field is frame-rate
// dependent, so every conversion takes an explicit fps. Parse reports
// malformed input as an error; ToSeconds keeps the historical fail-soft
// behavior of collapsing malformed input to 0.0 so one bad row never stops
// a batch. Callers that care should count Parse failures and surface them.
package timecode
