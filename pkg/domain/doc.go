/*
Package domain contains the in-memory architecture model manipulated by composer.

It defines the entities of a software architecture description and the rules
that keep it consistent. The package is pure: it performs no I/O, never prompts
and holds no package-level state. Callers own the Composition they build and
pass it explicitly to every operation.

# Key Entities

  - Composition: the top-level container of components.
  - Component: an encapsulated unit owning ports and runnables.
  - Port: a named, directional communication endpoint (sender or receiver).
  - Runnable: a named unit of behavior, periodic (with a period) or aperiodic.

# Invariants

Names are unique per container: components within a composition, ports and
runnables within a component. A runnable carries a period if and only if its
trigger is periodic. Every add operation either succeeds or leaves its
container untouched.

The model is not safe for concurrent use; a composition is expected to be
owned by a single caller at a time.
*/
package domain
