/*
Package ports defines the interfaces that decouple the arbor core from its adapters.

# Key Interfaces

  - TreeSink: the event boundary between the tokenizer and the tree builder.
  - DocumentCache: stores parsed trees by key (memory, Redis).
  - DocumentSource: enumerates markup documents from a corpus (Loam).
  - Watchable: optional capability of a source that can report changes.
*/
package ports
