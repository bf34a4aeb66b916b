/*
Package domain contains the shared vocabulary of the arbor parsing pipeline.

It defines the sentinel errors, the parse policies that alter tokenizer behavior at
the edges of the input, and the lifecycle events emitted around a parse. The package
is kept free of I/O so that adapters (HTTP, MCP, caches) and the core can depend on it
without pulling each other in.

# Key Entities

  - TrailingTextPolicy: what happens to text still buffered at end of input.
  - ParseEvent: a structural record of one parse, delivered to LifecycleHooks.
  - ErrInvariantViolation: the only fatal condition; raised through panic.
*/
package domain
