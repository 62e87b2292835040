package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
)

// NewHandler builds a slog.Handler that renders records as single lines in
// the form,
//
//	LEVEL message key=value key=value
//
// dropping records below the given level. Keys of grouped attributes are
// prefixed with the group name in "group.key" form.
//
// The handler does not lock the writer; writes for a single record are
// issued as a single Write call.
func NewHandler(w io.Writer, lvl slog.Level) slog.Handler {
	return &handler{w: w, lvl: lvl}
}

type handler struct {
	w   io.Writer
	lvl slog.Level

	attrs []byte // pre-rendered attributes, if any
	group []byte // current group prefix, if any
}

var _ slog.Handler = (*handler)(nil)

func (h *handler) Enabled(_ context.Context, lvl slog.Level) bool {
	return lvl >= h.lvl
}

var (
	_reset = []byte("\x1b[0m")
	_bold  = []byte("\x1b[1m")
	_dim   = []byte("\x1b[2m")

	_levelColors = []struct {
		min   slog.Level
		color []byte
	}{
		{slog.LevelError, []byte("\x1b[91;1m")}, // bright red
		{slog.LevelWarn, []byte("\x1b[93;1m")},  // bright yellow
		{slog.LevelInfo, []byte("\x1b[92;1m")},  // bright green
		{slog.LevelDebug, []byte("\x1b[2;1m")},  // dim
	}
)

func levelColor(lvl slog.Level) []byte {
	for _, lc := range _levelColors {
		if lvl >= lc.min {
			return lc.color
		}
	}
	return _levelColors[len(_levelColors)-1].color
}

func (h *handler) Handle(_ context.Context, rec slog.Record) error {
	buf := *getBuf()
	defer putBuf(&buf)

	lvl, err := rec.Level.MarshalText()
	if err != nil {
		return err
	}

	buf = append(buf, levelColor(rec.Level)...)
	buf = append(buf, lvl...)
	buf = append(buf, _reset...)
	buf = append(buf, ' ')

	buf = append(buf, _bold...)
	buf = append(buf, rec.Message...)
	buf = append(buf, _reset...)

	if len(h.attrs) > 0 {
		buf = append(buf, ' ')
		buf = append(buf, h.attrs...)
	}

	rec.Attrs(func(a slog.Attr) bool {
		buf = h.appendAttr(buf, h.group, a)
		return true
	})

	buf = append(buf, '\n')
	_, err = h.w.Write(buf)
	return err
}

func (h *handler) appendAttr(buf, group []byte, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return buf
	}

	if a.Value.Kind() == slog.KindGroup {
		group := group
		if len(group) > 0 {
			group = append(group, '.')
		}
		group = append(group, a.Key...)
		for _, a := range a.Value.Group() {
			buf = h.appendAttr(buf, group, a)
		}
		return buf
	}

	if len(buf) > 0 && buf[len(buf)-1] != ' ' {
		buf = append(buf, ' ')
	}

	buf = append(buf, _dim...)
	if len(group) > 0 {
		buf = append(buf, group...)
		buf = append(buf, '.')
	}
	buf = append(buf, a.Key...)
	buf = append(buf, '=')
	buf = append(buf, _reset...)
	return appendValue(buf, a.Value)
}

func appendValue(buf []byte, v slog.Value) []byte {
	switch v.Kind() {
	case slog.KindString:
		s := v.String()
		if strings.ContainsAny(s, " \"=") {
			return append(buf, strconv.Quote(s)...)
		}
		return append(buf, s...)

	case slog.KindInt64:
		return strconv.AppendInt(buf, v.Int64(), 10)

	case slog.KindUint64:
		return strconv.AppendUint(buf, v.Uint64(), 10)

	case slog.KindFloat64:
		return strconv.AppendFloat(buf, v.Float64(), 'f', -1, 64)

	case slog.KindBool:
		return strconv.AppendBool(buf, v.Bool())

	case slog.KindDuration:
		return append(buf, v.Duration().String()...)

	case slog.KindTime:
		return append(buf, v.Time().String()...)

	default:
		return fmt.Appendf(buf, "%v", v.Any())
	}
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := *h
	// Cap the slice so that appends below cannot write into a backing
	// array shared with the parent or a sibling handler.
	out.attrs = h.attrs[:len(h.attrs):len(h.attrs)]
	if len(out.attrs) > 0 {
		out.attrs = append(out.attrs, ' ')
	}
	for _, a := range attrs {
		out.attrs = out.appendAttr(out.attrs, h.group, a)
	}
	return &out
}

func (h *handler) WithGroup(name string) slog.Handler {
	out := *h
	out.group = h.group[:len(h.group):len(h.group)]
	if len(out.group) > 0 {
		out.group = append(out.group, '.')
	}
	out.group = append(out.group, name...)
	return &out
}

var _bufPool = sync.Pool{
	New: func() interface{} {
		bs := make([]byte, 0, 1024)
		return &bs
	},
}

func getBuf() *[]byte {
	return _bufPool.Get().(*[]byte)
}

func putBuf(bs *[]byte) {
	*bs = (*bs)[:0]
	_bufPool.Put(bs)
}
