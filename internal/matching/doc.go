// Package matching joins recorder takes against transmitter files.
//
// The join predicate is dual: the two rows must agree exactly on their
// userbits text, and their timecodes (converted to seconds at each row's own
// frame rate) must lie within the caller-supplied tolerance. The join is
// many-to-many with no pruning; every qualifying pair becomes an independent
// Match in a deterministic order (recorder rows outer, transmitter rows
// inner). Matches reference rows by table index and carry only the fields
// downstream naming and reporting need.
package matching
