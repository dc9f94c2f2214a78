/*
Package clock provides the built-in implementations of ports.Clock.

Virtual is a manually advanced clock for deterministic tests and scripted
reproductions: frames and wall time only move when the caller advances them.
Wall binds the same contract to real timers for live use.
*/
package clock
