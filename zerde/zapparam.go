package zerde

import "fmt"

// ZapParamKind tags a ZapParam's payload variant, matching the tag values a
// platform host and the core runtime agree on across the call boundary.
type ZapParamKind uint32

const (
	ZapParamString ZapParamKind = iota + 1
	ZapParamReadOnlyU8Buffer
	ZapParamMutableU8Buffer
	ZapParamReadOnlyF32Buffer
	ZapParamMutableF32Buffer
	ZapParamReadOnlyU32Buffer
	ZapParamMutableU32Buffer
)

// ZapParam is a tagged cross-boundary value. Exactly one of Str/U8Buffer/
// F32Buffer/U32Buffer is populated, selected by Kind — Go has no closed sum
// type, so this mirrors the original's seven-variant enum as a single
// struct with a discriminant field.
//
// The "ReadOnly" vs "Mutable" buffer variants carry the same Go slice
// representation; the distinction is a contract between caller and callee
// about whether the callee may write back into the buffer, not a
// wire-format difference.
type ZapParam struct {
	Kind      ZapParamKind
	Str       string
	U8Buffer  []byte
	F32Buffer []float32
	U32Buffer []uint32
}

// StringParam returns a ZapParam carrying a string.
func StringParam(s string) ZapParam { return ZapParam{Kind: ZapParamString, Str: s} }

// ReadOnlyU8BufferParam returns a ZapParam carrying a read-only byte buffer.
func ReadOnlyU8BufferParam(b []byte) ZapParam {
	return ZapParam{Kind: ZapParamReadOnlyU8Buffer, U8Buffer: b}
}

// MutableU8BufferParam returns a ZapParam carrying a mutable byte buffer.
func MutableU8BufferParam(b []byte) ZapParam {
	return ZapParam{Kind: ZapParamMutableU8Buffer, U8Buffer: b}
}

// ReadOnlyF32BufferParam returns a ZapParam carrying a read-only f32 buffer.
func ReadOnlyF32BufferParam(b []float32) ZapParam {
	return ZapParam{Kind: ZapParamReadOnlyF32Buffer, F32Buffer: b}
}

// MutableF32BufferParam returns a ZapParam carrying a mutable f32 buffer.
func MutableF32BufferParam(b []float32) ZapParam {
	return ZapParam{Kind: ZapParamMutableF32Buffer, F32Buffer: b}
}

// ReadOnlyU32BufferParam returns a ZapParam carrying a read-only u32 buffer.
func ReadOnlyU32BufferParam(b []uint32) ZapParam {
	return ZapParam{Kind: ZapParamReadOnlyU32Buffer, U32Buffer: b}
}

// MutableU32BufferParam returns a ZapParam carrying a mutable u32 buffer.
func MutableU32BufferParam(b []uint32) ZapParam {
	return ZapParam{Kind: ZapParamMutableU32Buffer, U32Buffer: b}
}

// PutZapParams appends a length-prefixed, tag-prefixed sequence of params.
func (b *Builder) PutZapParams(params []ZapParam) {
	b.PutU32(uint32(len(params)))
	for _, p := range params {
		b.PutU32(uint32(p.Kind))
		switch p.Kind {
		case ZapParamString:
			b.PutString(p.Str)
		case ZapParamReadOnlyU8Buffer, ZapParamMutableU8Buffer:
			b.PutBytes(p.U8Buffer)
		case ZapParamReadOnlyF32Buffer, ZapParamMutableF32Buffer:
			b.PutU32(uint32(len(p.F32Buffer)))
			for _, f := range p.F32Buffer {
				b.PutF32(f)
			}
		case ZapParamReadOnlyU32Buffer, ZapParamMutableU32Buffer:
			b.PutU32(uint32(len(p.U32Buffer)))
			for _, v := range p.U32Buffer {
				b.PutU32(v)
			}
		default:
			panic(fmt.Sprintf("zerde: unknown ZapParam kind %d", p.Kind))
		}
	}
}

// ZapParams reads back a sequence of params written by PutZapParams.
func (p *Parser) ZapParams() []ZapParam {
	n := p.U32()
	out := make([]ZapParam, n)
	for i := range out {
		kind := ZapParamKind(p.U32())
		switch kind {
		case ZapParamString:
			out[i] = StringParam(p.String())
		case ZapParamReadOnlyU8Buffer:
			out[i] = ReadOnlyU8BufferParam(p.Bytes())
		case ZapParamMutableU8Buffer:
			out[i] = MutableU8BufferParam(p.Bytes())
		case ZapParamReadOnlyF32Buffer:
			out[i] = ReadOnlyF32BufferParam(p.f32Slice())
		case ZapParamMutableF32Buffer:
			out[i] = MutableF32BufferParam(p.f32Slice())
		case ZapParamReadOnlyU32Buffer:
			out[i] = ReadOnlyU32BufferParam(p.u32Slice())
		case ZapParamMutableU32Buffer:
			out[i] = MutableU32BufferParam(p.u32Slice())
		default:
			panic(fmt.Sprintf("zerde: unexpected param type %d", kind))
		}
	}
	return out
}

func (p *Parser) f32Slice() []float32 {
	n := p.U32()
	out := make([]float32, n)
	for i := range out {
		out[i] = p.F32()
	}
	return out
}

func (p *Parser) u32Slice() []uint32 {
	n := p.U32()
	out := make([]uint32, n)
	for i := range out {
		out[i] = p.U32()
	}
	return out
}
