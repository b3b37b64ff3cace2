package beacon

import (
	"context"
	"fmt"

	"github.com/zoobzio/capitan"
)

// Source emits raw payloads that feed a subject. The channel is closed when
// ctx is canceled or the source can no longer produce values.
type Source interface {
	Watch(ctx context.Context) (<-chan []byte, error)
}

// ChannelSource adapts an existing byte channel as a Source.
type ChannelSource struct {
	ch <-chan []byte
}

// NewChannelSource returns a Source that emits the values received on ch.
func NewChannelSource(ch <-chan []byte) *ChannelSource {
	return &ChannelSource{ch: ch}
}

// Watch forwards values from the wrapped channel until it closes or ctx ends.
func (s *ChannelSource) Watch(ctx context.Context) (<-chan []byte, error) {
	out := make(chan []byte)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-s.ch:
				if !ok {
					return
				}
				select {
				case out <- v:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

// Bind feeds the named subject from src. Every payload is decoded with codec
// and applied with Mutate, so payloads arriving faster than the poll interval
// coalesce like any other mutation. Payloads that fail to decode are skipped.
// A nil codec means YAMLCodec.
//
// Bind returns once the source is watching; feeding continues in the
// background until ctx is canceled or the source closes. The returned channel
// is closed when feeding stops.
func (r *Registry) Bind(ctx context.Context, name string, src Source, codec Codec) (<-chan struct{}, error) {
	if blank(name) {
		r.reject(ctx, "bind", ErrBlankName)
		return nil, ErrBlankName
	}
	if src == nil {
		r.reject(ctx, "bind", ErrNilSource)
		return nil, ErrNilSource
	}
	if codec == nil {
		codec = YAMLCodec{}
	}

	payloads, err := src.Watch(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start source for %q: %w", name, err)
	}

	done := make(chan struct{})
	go r.feed(ctx, name, payloads, codec, done)
	return done, nil
}

func (r *Registry) feed(ctx context.Context, name string, payloads <-chan []byte, codec Codec, done chan<- struct{}) {
	defer close(done)
	defer capitan.Emit(context.WithoutCancel(ctx), SourceClosed, KeySubject.Field(name))

	for raw := range payloads {
		var v any
		if err := codec.Unmarshal(raw, &v); err != nil {
			capitan.Emit(ctx, SourceDecodeFailed,
				KeySubject.Field(name),
				KeyContentType.Field(codec.ContentType()),
				KeyError.Field(err.Error()),
			)
			continue
		}
		r.Mutate(name, v)
	}
}
