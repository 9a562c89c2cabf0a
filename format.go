package logfacade

import (
	"fmt"
	"strconv"
	"strings"
)

// formatTemplate renders a positional template: "{0}", "{1,-8}" (padded,
// negative aligns left) and "{0:.2f}" (fmt verb without the percent sign).
// "{{" and "}}" are literal braces. Without arguments the braces are
// escaped first so any text is emitted unchanged. A verb that does not
// apply to its argument is an error, as is an index without an argument.
func formatTemplate(template string, args []any) (string, error) {
	if template == emptyString {
		return template, nil
	}
	if len(args) == 0 {
		template = escapeBraces(template)
	}

	var b strings.Builder
	b.Grow(len(template) + 16*len(args))

	for i := 0; i < len(template); i++ {
		c := template[i]
		switch c {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				b.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				return emptyString, fmt.Errorf("format %q: unclosed '{' at offset %d", template, i)
			}
			item := template[i+1 : i+1+end]
			s, err := formatItem(item, args)
			if err != nil {
				return emptyString, fmt.Errorf("format %q: %w", template, err)
			}
			b.WriteString(s)
			i += end + 1
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				b.WriteByte('}')
				i++
				continue
			}
			return emptyString, fmt.Errorf("format %q: unmatched '}' at offset %d", template, i)
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}

// formatItem renders one "index[,alignment][:verb]" placeholder.
func formatItem(item string, args []any) (string, error) {
	verb := emptyString
	if colon := strings.IndexByte(item, ':'); colon >= 0 {
		verb = item[colon+1:]
		item = item[:colon]
	}
	align := 0
	if comma := strings.IndexByte(item, ','); comma >= 0 {
		a, err := strconv.Atoi(strings.TrimSpace(item[comma+1:]))
		if err != nil {
			return emptyString, fmt.Errorf("bad alignment in {%s}", item)
		}
		align = a
		item = item[:comma]
	}
	idx, err := strconv.Atoi(strings.TrimSpace(item))
	if err != nil || idx < 0 {
		return emptyString, fmt.Errorf("bad index in {%s}", item)
	}
	if idx >= len(args) {
		return emptyString, fmt.Errorf("index %d out of range, %d argument(s)", idx, len(args))
	}

	var s string
	if verb == emptyString {
		s = fmt.Sprint(args[idx])
	} else {
		s = fmt.Sprintf("%"+strings.TrimPrefix(verb, "%"), args[idx])
		// fmt reports a bad verb or operand inline as "%!".
		if strings.Contains(s, "%!") && !strings.Contains(fmt.Sprint(args[idx]), "%!") {
			return emptyString, fmt.Errorf("verb %q does not apply to %T: %s", verb, args[idx], s)
		}
	}
	if align != 0 {
		s = fmt.Sprintf("%*s", align, s)
	}
	return s, nil
}

func escapeBraces(s string) string {
	if !strings.ContainsAny(s, "{}") {
		return s
	}
	return strings.NewReplacer("{", "{{", "}", "}}").Replace(s)
}
