package arbor

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/aretw0/arbor/internal/builder"
	"github.com/aretw0/arbor/internal/lexer"
	"github.com/aretw0/arbor/pkg/dom"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/ports"
)

// Parse converts markup into a document tree using the default options.
// It never fails: malformed markup is tolerated.
func Parse(markup string) *dom.Tree {
	return parse(markup, lexer.Options{})
}

func parse(markup string, opts lexer.Options) *dom.Tree {
	b := builder.New()
	lexer.New(b, opts).Run(markup)
	return b.Tree()
}

// Parser is the configurable entry point. It adds caching, lifecycle hooks and
// logging around the tokenizer and is safe for concurrent use.
type Parser struct {
	cache   ports.DocumentCache
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
	lexOpts lexer.Options
}

// Option defines a functional option for configuring the Parser.
type Option func(*Parser)

// WithLogger sets a custom structured logger for the parser.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// WithCache stores parsed trees in cache and serves repeated input from it.
func WithCache(cache ports.DocumentCache) Option {
	return func(p *Parser) {
		p.cache = cache
	}
}

// WithLifecycleHooks registers observability hooks. Calling it more than once
// chains the hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(p *Parser) {
		p.hooks = p.hooks.Merge(hooks)
	}
}

// WithTrailingText selects what happens to text left over at end of input.
func WithTrailingText(policy domain.TrailingTextPolicy) Option {
	return func(p *Parser) {
		p.lexOpts.TrailingText = policy
	}
}

// WithUnquotedValues accepts attribute values written without quotes (a=b).
func WithUnquotedValues(enabled bool) Option {
	return func(p *Parser) {
		p.lexOpts.UnquotedValues = enabled
	}
}

// New creates a Parser.
func New(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if p.lexOpts.TrailingText == "" {
		p.lexOpts.TrailingText = domain.TrailingTextFlush
	}
	return p
}

// Parse converts markup into a document tree. The only error is a context that is
// already done; cache failures are logged and the markup is parsed anyway.
func (p *Parser) Parse(ctx context.Context, markup string) (*dom.Tree, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	event := &domain.ParseEvent{
		EventBase:  domain.EventBase{Timestamp: start, Type: domain.EventParseStart},
		InputBytes: len(markup),
	}
	if p.hooks.OnParseStart != nil {
		p.hooks.OnParseStart(ctx, event)
	}

	tree, hit := p.lookup(ctx, markup)
	if tree == nil {
		tree = parse(markup, p.lexOpts)
		p.store(ctx, markup, tree)
	}

	done := &domain.ParseEvent{
		EventBase:  domain.EventBase{Timestamp: time.Now(), Type: domain.EventParseDone},
		InputBytes: len(markup),
		Nodes:      tree.Len(),
		Depth:      tree.Depth(),
		Duration:   time.Since(start),
		CacheHit:   hit,
	}
	p.logger.Debug("markup parsed",
		"bytes", done.InputBytes,
		"nodes", done.Nodes,
		"depth", done.Depth,
		"cache_hit", done.CacheHit,
		"duration", done.Duration,
	)
	if p.hooks.OnParseDone != nil {
		p.hooks.OnParseDone(ctx, done)
	}

	return tree, nil
}

// CacheKey returns the key under which the tree for markup is cached. It covers
// the parser options, since they change the resulting tree.
func (p *Parser) CacheKey(markup string) string {
	h := sha256.New()
	h.Write([]byte(p.lexOpts.TrailingText))
	h.Write([]byte{0})
	h.Write([]byte(strconv.FormatBool(p.lexOpts.UnquotedValues)))
	h.Write([]byte{0})
	h.Write([]byte(markup))
	return hex.EncodeToString(h.Sum(nil))
}

func (p *Parser) lookup(ctx context.Context, markup string) (*dom.Tree, bool) {
	if p.cache == nil {
		return nil, false
	}
	tree, err := p.cache.Get(ctx, p.CacheKey(markup))
	if err != nil {
		if !errors.Is(err, domain.ErrDocumentNotFound) {
			p.logger.Warn("document cache lookup failed", "error", err)
		}
		return nil, false
	}
	return tree, true
}

func (p *Parser) store(ctx context.Context, markup string, tree *dom.Tree) {
	if p.cache == nil {
		return
	}
	if err := p.cache.Put(ctx, p.CacheKey(markup), tree); err != nil {
		p.logger.Warn("document cache store failed", "error", err)
	}
}
