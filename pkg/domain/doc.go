/*
Package domain contains the core domain models for the transition engine.

It defines the fundamental entities of the class-transition timeline, such as
Descriptors, Options, and run Phases. This package is kept pure and free of
external dependencies like I/O or clocks, following Hexagonal Architecture
principles.

# Key Entities

  - Descriptor: An immutable description of one transition (during/start/end
    tags plus a duration).
  - Options: The typed option bag accepted by the named primitives.
  - Phase: The lifecycle position of an in-flight run.
  - LifecycleHooks: Observability callbacks fired as runs move between phases.
*/
package domain
