// Package dataset packs encoded data blocks into an XML dataset built from a
// template. A run is all-or-nothing: the dataset is only written when every
// input block was read and encoded.
package dataset

import (
	"context"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/anupcshan/bin2dataset/blockname"
	"github.com/anupcshan/bin2dataset/hexblock"
)

type Block struct {
	Name string
	Data []byte
}

// Result holds either every fragment of a batch, in input order, or the
// error that stopped it.
type Result struct {
	Fragments []Fragment
	Err       error
}

func (r Result) OK() bool {
	return r.Err == nil
}

// LastContainer is the container name of the last processed block.
func (r Result) LastContainer() string {
	if len(r.Fragments) == 0 {
		return ""
	}
	return r.Fragments[len(r.Fragments)-1].Metadata.ContainerName
}

type Builder struct {
	cfg     Config
	log     logrus.FieldLogger
	metrics *runMetrics
}

type Option func(*Builder)

func WithLogger(l logrus.FieldLogger) Option {
	return func(b *Builder) {
		b.log = l
	}
}

func NewBuilder(cfg Config, opts ...Option) *Builder {
	b := &Builder{
		cfg:     cfg,
		log:     logrus.StandardLogger(),
		metrics: newRunMetrics(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Builder) LoadTemplate() (string, error) {
	data, err := os.ReadFile(b.cfg.TemplatePath)
	if err != nil {
		return "", newError(TemplateRead, b.cfg.TemplatePath, err)
	}
	return string(data), nil
}

// Load reads every input, at most cfg.Jobs at a time. If any read fails no
// blocks are returned, and the error is the one for the earliest failing
// path regardless of jobs.
func (b *Builder) Load(ctx context.Context, paths []string) ([]Block, error) {
	jobs := b.cfg.Jobs
	if jobs < 1 {
		jobs = 1
	}

	blocks := make([]Block, len(paths))
	errs := make([]error, len(paths))
	var g errgroup.Group
	g.SetLimit(jobs)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = newError(InputRead, path, err)
				return nil
			}
			data, err := os.ReadFile(path)
			if err != nil {
				errs[i] = newError(InputRead, path, err)
				return nil
			}
			blocks[i] = Block{Name: path, Data: data}
			return nil
		})
	}
	// Failures are kept per path, so every goroutine returns nil.
	_ = g.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return blocks, nil
}

func (b *Builder) Process(blocks []Block) Result {
	fragments := make([]Fragment, 0, len(blocks))
	for _, blk := range blocks {
		md, err := blockname.Parse(blk.Name, b.cfg.UseContainerPrefix)
		if err != nil {
			return Result{Err: newError(Encode, blk.Name, err)}
		}

		encoded, err := hexblock.Encode(blk.Data, b.cfg.WrapWidth)
		if err != nil {
			return Result{Err: newError(Encode, blk.Name, err)}
		}

		text, err := BuildFragment(md, encoded)
		if err != nil {
			return Result{Err: newError(Encode, blk.Name, err)}
		}

		b.log.WithFields(logrus.Fields{
			"file":    blk.Name,
			"address": md.Address,
			"bytes":   len(blk.Data),
		}).Debug("Encoded block")
		b.metrics.observeBlock(len(blk.Data))

		fragments = append(fragments, Fragment{Metadata: md, Text: text})
	}

	return Result{Fragments: fragments}
}

// Run builds the dataset for paths and returns the path of the written file.
func (b *Builder) Run(ctx context.Context, paths []string) (out string, err error) {
	defer func() {
		b.metrics.observeRun(err)
		if b.cfg.MetricsTextfile == "" {
			return
		}
		if werr := b.metrics.writeTextfile(b.cfg.MetricsTextfile); werr != nil {
			b.log.WithError(werr).Warnf("Failed to write metrics to %s", b.cfg.MetricsTextfile)
		}
	}()

	tpl, err := b.LoadTemplate()
	if err != nil {
		return "", err
	}

	blocks, err := b.Load(ctx, paths)
	if err != nil {
		return "", err
	}

	res := b.Process(blocks)
	if !res.OK() {
		return "", res.Err
	}

	if !HasMarker(tpl) {
		b.log.Warnf("Template %s has no %s marker, writing it unchanged", b.cfg.TemplatePath, Marker)
	}
	data := Inject(tpl, Assemble(res.Fragments))

	out = filepath.Join(b.cfg.OutputDir, OutputName(res.LastContainer(), b.cfg.UseContainerPrefix, b.cfg.OutputName))
	if err := os.WriteFile(out, []byte(data), 0644); err != nil {
		return "", newError(OutputWrite, out, err)
	}

	return out, nil
}
