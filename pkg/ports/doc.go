/*
Package ports defines the driven ports (interfaces) for the transition engine.

These interfaces decouple the scheduling core from external implementations,
allowing the engine to run against a real paint/timer host or against a
manually advanced virtual clock in tests.

# Key Interfaces

  - Clock: Responsible for next-frame and wall-clock timeout scheduling.
  - Target: An addressable element carrying a tag set and a display flag.
  - Resolver: Responsible for turning target references into live Targets.
*/
package ports
