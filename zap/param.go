package zap

import "zaplib.dev/core/zerde"

// ParamHandler receives the ZapParam list an external caller (a
// WebSocket peer, a subprocess, a host process) sent for one named call.
// DispatchCall looks the handler up by name and invokes it directly with
// params that are already decoded; it neither decodes Zerde bytes nor
// opens a redraw cycle.
type ParamHandler func(cx *Context, name string, params []zerde.ZapParam)

// paramHandlers is the process-wide table of named external entry points.
// It lives outside Context because registration happens once at startup,
// before any Context exists in tests that construct their own.
var paramHandlers = map[string]ParamHandler{}

// RegisterCall associates name with handler, so a later DispatchCall for
// that name invokes it. Re-registering a name replaces its handler.
func RegisterCall(name string, handler ParamHandler) {
	paramHandlers[name] = handler
}

// DispatchCall looks up name's registered handler and invokes it with
// params, reporting whether a handler was found.
func DispatchCall(cx *Context, name string, params []zerde.ZapParam) bool {
	h, ok := paramHandlers[name]
	if !ok {
		return false
	}
	h(cx, name, params)
	return true
}

// BuildReturnParams is a small helper for a ParamHandler that wants to
// send structured data back through the same Zerde-framed channel it was
// invoked over.
func BuildReturnParams(params []zerde.ZapParam) []byte {
	b := zerde.NewBuilder()
	b.PutZapParams(params)
	return b.Bytes()
}
