package shadergen

import (
	"bufio"
	"io"
	"strings"
)

// WriteDepfile writes a Make style dependency rule "target: inputs..." so that
// build systems rerun generation when a fragment file changes. Spaces in
// paths are escaped.
func WriteDepfile(w io.Writer, target string, inputs []string) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(escapeDep(target))
	bw.WriteByte(':')
	for _, in := range inputs {
		bw.WriteString(" \\\n  ")
		bw.WriteString(escapeDep(in))
	}
	bw.WriteByte('\n')
	return bw.Flush()
}

var depEscaper = strings.NewReplacer(" ", `\ `, "#", `\#`, "$", "$$")

func escapeDep(path string) string {
	return depEscaper.Replace(path)
}
