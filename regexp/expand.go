package regexp

import "strconv"

// ExpandString appends template to dst with references replaced by the
// corresponding submatch of src, where match is the index slice returned by
// FindStringSubmatchIndex.
//
// Recognized references:
//
//	$$        a literal "$"
//	$&        the whole match
//	$1..$99   a numbered group (two digits only when that group exists)
//	${n}      a numbered group
//	${name}   a named group
//
// The same syntax is honored whichever engine compiled the Regexp.
// Unknown references expand to the empty string; a "$" that does not start
// a reference is copied through.
func (r *Regexp) ExpandString(dst []byte, template, src string, match []int) []byte {
	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '$' || i+1 == len(template) {
			dst = append(dst, c)
			continue
		}

		next := template[i+1]
		switch {
		case next == '$':
			dst = append(dst, '$')
			i++
		case next == '&':
			dst = appendGroup(dst, src, match, 0)
			i++
		case next == '{':
			end := -1
			for j := i + 2; j < len(template); j++ {
				if template[j] == '}' {
					end = j
					break
				}
			}
			if end < 0 {
				dst = append(dst, c)
				continue
			}
			if g := r.groupIndex(template[i+2 : end]); g >= 0 {
				dst = appendGroup(dst, src, match, g)
			}
			i = end
		case next >= '0' && next <= '9':
			g := int(next - '0')
			i++
			if i+1 < len(template) && template[i+1] >= '0' && template[i+1] <= '9' {
				if two := g*10 + int(template[i+1]-'0'); two <= r.NumSubexp() {
					g = two
					i++
				}
			}
			dst = appendGroup(dst, src, match, g)
		default:
			dst = append(dst, c)
		}
	}

	return dst
}

func (r *Regexp) groupIndex(name string) int {
	if n, err := strconv.Atoi(name); err == nil {
		if n >= 0 && n <= r.NumSubexp() {
			return n
		}
		return -1
	}

	for i, v := range r.names {
		if v != "" && v == name {
			return i
		}
	}

	return -1
}

func appendGroup(dst []byte, src string, match []int, g int) []byte {
	if 2*g+1 >= len(match) {
		return dst
	}

	start, end := match[2*g], match[2*g+1]
	if start < 0 || end < 0 {
		return dst
	}

	return append(dst, src[start:end]...)
}

// ReplaceAllString returns a copy of src with every match replaced by repl,
// expanded as in [Regexp.ExpandString].
func (r *Regexp) ReplaceAllString(src, repl string) string {
	return r.ReplaceString(src, repl, -1)
}

// ReplaceString is like [Regexp.ReplaceAllString] but replaces at most n
// matches; n < 0 means all.
func (r *Regexp) ReplaceString(src, repl string, n int) string {
	matches := r.FindAllStringSubmatchIndex(src, n)
	if len(matches) == 0 {
		return src
	}

	out := make([]byte, 0, len(src)+len(repl)*len(matches))
	last := 0
	for _, m := range matches {
		out = append(out, src[last:m[0]]...)
		out = r.ExpandString(out, repl, src, m)
		last = m[1]
	}

	return string(append(out, src[last:]...))
}
