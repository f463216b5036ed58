package tmsh

import "strings"

// Op is the shape of a script line.
type Op string

const (
	OpShebang   Op = "shebang"
	OpComment   Op = "comment"
	OpBlank     Op = "blank"
	OpDirective Op = "directive"
	OpAssign    Op = "assign"
	OpEcho      Op = "echo"
	OpTmsh      Op = "tmsh"
)

// Kind classifies records by the entity they provision.
type Kind string

const (
	KindNone          Kind = ""
	KindPartition     Kind = "partition"
	KindMonitor       Kind = "monitor"
	KindProfile       Kind = "profile"
	KindNode          Kind = "node"
	KindPool          Kind = "pool"
	KindPoolMember    Kind = "pool-member"
	KindVirtualServer Kind = "virtual-server"
	KindSave          Kind = "save"
	KindWarning       Kind = "warning"
)

// Option is one "key value" argument of a tmsh command.
type Option struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	// Quoted wraps the value in double quotes.
	Quoted bool `json:"quoted,omitempty"`
}

func (o Option) render() string {
	if o.Quoted {
		return o.Key + " " + quote(o.Value)
	}
	return o.Key + " " + o.Value
}

// Record is a single logical script line.
type Record struct {
	Op   Op   `json:"op"`
	Kind Kind `json:"kind,omitempty"`

	// tmsh fields: "tmsh <Verb> <Module> <Target> <Options...>".
	Verb    string   `json:"verb,omitempty"`
	Module  string   `json:"module,omitempty"`
	Target  string   `json:"target,omitempty"`
	Options []Option `json:"options,omitempty"`

	// Guard is echoed instead of failing when the command errors,
	// which tmsh does when the object already exists.
	Guard string `json:"guard,omitempty"`

	// Text is the payload of comment, directive, echo and shebang records;
	// for assign records it is the value.
	Text string `json:"text,omitempty"`
	Name string `json:"name,omitempty"`

	// Expand leaves "$" in an echo unescaped so the shell substitutes
	// variables. Only set for fixed, generator-owned text.
	Expand bool `json:"expand,omitempty"`
}

// Lines renders the record to one or more script lines.
func (r Record) Lines() []string {
	switch r.Op {
	case OpShebang:
		return []string{"#!" + r.Text}
	case OpComment:
		return []string{"# " + singleLine(r.Text)}
	case OpBlank:
		return []string{""}
	case OpDirective:
		return []string{r.Text}
	case OpAssign:
		return []string{r.Name + "=" + quote(r.Text)}
	case OpEcho:
		if r.Expand {
			return []string{"echo " + quoteExpand(r.Text)}
		}
		return []string{"echo " + quote(r.Text)}
	case OpTmsh:
		return r.tmshLines()
	default:
		return nil
	}
}

func (r Record) tmshLines() []string {
	head := strings.Join(nonEmpty("tmsh", r.Verb, r.Module, r.Target), " ")
	lines := make([]string, 0, len(r.Options)+1)
	lines = append(lines, head)
	for _, o := range r.Options {
		lines = append(lines, "  "+o.render())
	}

	last := len(lines) - 1
	if r.Guard != "" {
		lines[last] += " || echo " + quote(r.Guard)
	}
	for i := 0; i < last; i++ {
		lines[i] += " \\"
	}
	return lines
}

// quote wraps s in double quotes for bash so that it reaches the command as
// literal text. A backslash is doubled only where bash would otherwise give
// it meaning, so escape sequences such as \r\n in monitor payloads are
// written as the user typed them.
func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\':
			if i+1 == len(s) || isDoubleQuoteSpecial(s[i+1]) {
				b.WriteByte('\\')
			}
		case '"', '$', '`':
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	b.WriteByte('"')
	return b.String()
}

// quoteExpand is quote without escaping "$".
func quoteExpand(s string) string {
	return strings.ReplaceAll(quote(s), `\$`, `$`)
}

// isDoubleQuoteSpecial reports whether a backslash before c is consumed by
// bash inside double quotes.
func isDoubleQuoteSpecial(c byte) bool {
	switch c {
	case '\\', '"', '$', '`', '\n':
		return true
	default:
		return false
	}
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// singleLine keeps comment text on its line.
func singleLine(s string) string {
	return lineBreaks.Replace(s)
}

func nonEmpty(parts ...string) []string {
	out := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
