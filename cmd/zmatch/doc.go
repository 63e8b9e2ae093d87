// Package main hosts the zmatch CLI entrypoint and command graph.
//
// The Cobra-based command tree turns terminal invocations into calls against
// the internal packages: log inspection, track discovery, match previews,
// and the commit that copies matched transmitter files into their scene/take
// names. It centralizes configuration resolution and structured logging
// setup so subcommands can focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
