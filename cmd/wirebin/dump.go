package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/slideinc/wirebin-go/pkg/wirebin"
)

// dumpValue writes one node per line with tag names and payloads, nesting
// by indentation. Long byte strings are truncated.
func dumpValue(w io.Writer, v wirebin.Value, depth int) {
	indent := strings.Repeat("  ", depth)
	switch v := v.(type) {
	case wirebin.Null:
		fmt.Fprintf(w, "%sNull\n", indent)
	case wirebin.Int32:
		fmt.Fprintf(w, "%sInt32 %d\n", indent, int32(v))
	case wirebin.Int64:
		fmt.Fprintf(w, "%sInt64 %d\n", indent, int64(v))
	case *wirebin.BigInt:
		fmt.Fprintf(w, "%sBigInt %s\n", indent, v.Int().String())
	case wirebin.Float64:
		fmt.Fprintf(w, "%sFloat64 %g\n", indent, float64(v))
	case wirebin.ByteString:
		fmt.Fprintf(w, "%sByteString(%d) %s\n", indent, len(v), hexPreview(v))
	case wirebin.String:
		fmt.Fprintf(w, "%sUtf8String %q\n", indent, string(v))
	case wirebin.List:
		fmt.Fprintf(w, "%sList(%d)\n", indent, len(v))
		for _, elem := range v {
			dumpValue(w, elem, depth+1)
		}
	case wirebin.Tuple:
		fmt.Fprintf(w, "%sTuple(%d)\n", indent, len(v))
		for _, elem := range v {
			dumpValue(w, elem, depth+1)
		}
	case wirebin.Map:
		fmt.Fprintf(w, "%sMap(%d)\n", indent, len(v))
		for _, entry := range v {
			dumpValue(w, entry.Key, depth+1)
			dumpValue(w, entry.Value, depth+2)
		}
	case wirebin.Opaque:
		fmt.Fprintf(w, "%sExtension <%T>\n", indent, v.Obj)
	default:
		fmt.Fprintf(w, "%s<%T>\n", indent, v)
	}
}

func hexPreview(data []byte) string {
	const max = 32
	if len(data) <= max {
		return fmt.Sprintf("%x", data)
	}
	return fmt.Sprintf("%x...", data[:max])
}
