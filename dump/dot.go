package dump

import (
	"fmt"
	"io"
	"strings"
)

// Dot outputs the slots of view in Graphviz DOT format, as a single record
// node with live slots filled.
func Dot[T any](w io.Writer, name string, view Slotted[T]) error {
	items := view.Items()
	var fields []string
	for i := 0; i < view.Cap(); i++ {
		if i < len(items) {
			fields = append(fields, fmt.Sprintf("<s%d> %s", i, dotEscape(fmt.Sprint(items[i]))))
		} else {
			fields = append(fields, fmt.Sprintf("<s%d> ", i))
		}
	}
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	fmt.Fprintf(&b, "\t\"%s\" [shape=record,label=\"%s\"];\n", dotEscape(name), strings.Join(fields, "|"))
	fmt.Fprintf(&b, "\t\"%s_len\" [shape=plaintext,label=\"len=%d cap=%d\"];\n",
		dotEscape(name), view.Len(), view.Cap())
	if view.Len() < view.Cap() {
		// point at the first dead slot, where the next push goes
		fmt.Fprintf(&b, "\t\"%s_len\" -> \"%s\":s%d;\n", dotEscape(name), dotEscape(name), view.Len())
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

var dotReplacer = strings.NewReplacer(
	`\`, `\\`, `"`, `\"`, `|`, `\|`, `{`, `\{`, `}`, `\}`, `<`, `\<`, `>`, `\>`,
)

func dotEscape(s string) string {
	return dotReplacer.Replace(s)
}
