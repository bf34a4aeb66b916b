package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/aretw0/arbor/internal/input"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/ports"
)

// CorpusResult is the outcome of parsing one document.
type CorpusResult struct {
	ID    string
	Title string
	Bytes int
	Nodes int
	Depth int
	Err   error
}

// ParseCorpus parses every document of source in ID order. A document that
// fails is reported in its result; only listing errors abort the run.
func ParseCorpus(ctx context.Context, rt *Runtime, source ports.DocumentSource) ([]CorpusResult, error) {
	ids, err := source.List(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]CorpusResult, 0, len(ids))
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		results = append(results, parseDocument(ctx, rt, source, id))
	}
	return results, nil
}

func parseDocument(ctx context.Context, rt *Runtime, source ports.DocumentSource, id string) CorpusResult {
	res := CorpusResult{ID: id}

	doc, err := source.Get(ctx, id)
	if err != nil {
		res.Err = err
		return res
	}
	res.Title = doc.Title
	res.Bytes = len(doc.Markup)

	markup, err := input.Sanitize(doc.Markup, input.MaxSize(rt.Config.Server.MaxInputSize))
	if err != nil {
		res.Err = err
		return res
	}
	tree, err := rt.Parser.Parse(ctx, markup)
	if err != nil {
		res.Err = err
		return res
	}
	res.Nodes = tree.Len()
	res.Depth = tree.Depth()
	return res
}

// WriteCorpusTable prints one row per result.
func WriteCorpusTable(w io.Writer, results []CorpusResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tBYTES\tNODES\tDEPTH\tSTATUS")
	for _, r := range results {
		status := "ok"
		if r.Err != nil {
			status = r.Err.Error()
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\n", r.ID, r.Bytes, r.Nodes, r.Depth, status)
	}
	return tw.Flush()
}

// FailedCount returns how many results carry an error.
func FailedCount(results []CorpusResult) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}

// WatchCorpus re-parses each document the source reports as changed until ctx ends.
func WatchCorpus(ctx context.Context, rt *Runtime, source ports.DocumentSource, w io.Writer) error {
	watchable, ok := source.(ports.Watchable)
	if !ok {
		return errors.New("corpus source does not support watching")
	}
	events, err := watchable.Watch(ctx)
	if err != nil {
		return err
	}

	printSystemMessage(w, "Watching for changes. Press Ctrl+C to stop.")
	for {
		select {
		case <-ctx.Done():
			return nil
		case id, ok := <-events:
			if !ok {
				return nil
			}
			res := parseDocument(ctx, rt, source, id)
			switch {
			case errors.Is(res.Err, domain.ErrDocumentNotFound):
				printSystemMessage(w, "'%s' removed.", id)
			case res.Err != nil:
				rt.Logger.Warn("Corpus document failed", "id", id, "err", res.Err)
				printSystemMessage(w, "'%s' failed: %v", id, res.Err)
			default:
				printSystemMessage(w, "'%s' parsed: %d nodes, depth %d.", id, res.Nodes, res.Depth)
			}
		}
	}
}
