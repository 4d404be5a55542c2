// Package format renders container contents for display.
package format

import (
	"fmt"
	"iter"
	"strings"
)

// List renders seq as "[ a, b, c ]". An empty sequence is rendered as
// "[  ]".
func List[T any](seq iter.Seq[T]) string {
	var sb strings.Builder
	sb.WriteString("[ ")
	join(&sb, seq)
	sb.WriteString(" ]")
	return sb.String()
}

// Array renders seq as "[a, b, c]". An empty sequence is rendered as
// "[]".
func Array[T any](seq iter.Seq[T]) string {
	var sb strings.Builder
	sb.WriteByte('[')
	join(&sb, seq)
	sb.WriteByte(']')
	return sb.String()
}

func join[T any](sb *strings.Builder, seq iter.Seq[T]) {
	first := true
	for v := range seq {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprint(sb, v)
	}
}
