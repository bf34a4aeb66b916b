/*
Package arbor turns markup text into a minimal in-memory document tree.

It implements a deliberately small ingestion pipeline: a byte-driven tokenizer state
machine feeds an incremental tree builder, which maintains a stack of open containers
seeded with the document root. Malformed markup is tolerated silently (stray closing
tags are ignored, broken attributes are dropped or abandoned), so a parse always
yields a tree.

# Concept

The tokenizer never touches the tree. Each transition may fire one of three events
(flush text, open element, close element) on a ports.TreeSink, and the builder turns
those events into nodes of a dom.Tree. The tree is an arena: nodes are addressed by
dom.NodeID and never move once attached.

# Key Features

  - Single forward pass, no backtracking.
  - Void elements (br, img, input, ...) are closed as soon as they are opened.
  - Attributes keep declaration order; duplicates are retained.
  - Optional caching (memory or Redis), lifecycle hooks and structured logging.

# Usage

The zero-configuration entry point is Parse:

	tree := arbor.Parse(`<p>Hello <b>World</b></p>`)
	for id := range tree.Children(tree.Root()) {
		fmt.Println(tree.Node(id).Kind())
	}

For caching, metrics and logging build a Parser:

	p := arbor.New(
		arbor.WithCache(memory.NewCache()),
		arbor.WithLogger(slog.Default()),
	)
	tree, err := p.Parse(ctx, markup)
*/
package arbor
