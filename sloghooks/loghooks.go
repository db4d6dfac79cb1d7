// Package sloghooks reports bridge events to a *slog.Logger.
package sloghooks

import (
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/jsonbridge"
)

type Options struct {
	// Sampling to avoid floods on hot decode paths; 0/1 = log all.
	DecodeRejectedEvery uint64
	EncodeFailedEvery   uint64
	// Log AdapterBound at Debug. Off by default: it fires once per type.
	LogBindings bool
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	decodeRejectedCtr atomic.Uint64
	encodeFailedCtr   atomic.Uint64
}

var _ jsonbridge.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) AdapterBound(typeName string) {
	if h.l == nil || !h.opts.LogBindings {
		return
	}
	h.l.Debug("jsonbridge.adapter_bound", "type", typeName)
}

func (h *Hooks) DecodeRejected(typeName string, err error) {
	if h.l == nil || !sample(h.opts.DecodeRejectedEvery, &h.decodeRejectedCtr) {
		return
	}
	h.l.Warn("jsonbridge.decode_rejected",
		"type", typeName,
		"err", err)
}

func (h *Hooks) EncodeFailed(typeName string, err error) {
	if h.l == nil || !sample(h.opts.EncodeFailedEvery, &h.encodeFailedCtr) {
		return
	}
	h.l.Error("jsonbridge.encode_failed",
		"type", typeName,
		"err", err)
}

func (h *Hooks) PayloadTooLarge(typeName string, size, limit int) {
	if h.l == nil {
		return
	}
	h.l.Warn("jsonbridge.payload_too_large",
		"type", typeName,
		"size", size,
		"limit", limit)
}
