package tmsh

// Shebang returns an interpreter directive record.
func Shebang(interpreter string) Record {
	return Record{Op: OpShebang, Text: interpreter}
}

// Comment returns a "# text" record.
func Comment(text string) Record {
	return Record{Op: OpComment, Text: text}
}

// Blank returns an empty line.
func Blank() Record {
	return Record{Op: OpBlank}
}

// Directive returns a raw shell line.
func Directive(line string) Record {
	return Record{Op: OpDirective, Text: line}
}

// Assign returns a NAME="value" record.
func Assign(name, value string) Record {
	return Record{Op: OpAssign, Name: name, Text: value}
}

// Echo returns an echo record that prints text literally.
func Echo(text string) Record {
	return Record{Op: OpEcho, Text: text}
}

// EchoEnv returns an echo record whose "$NAME" references are expanded by
// the shell. text must not come from user input.
func EchoEnv(text string) Record {
	return Record{Op: OpEcho, Text: text, Expand: true}
}

// Warning returns an echo record classified as a warning.
func Warning(text string) Record {
	return Record{Op: OpEcho, Kind: KindWarning, Text: "WARNING: " + text}
}

// Command returns a tmsh record.
func Command(kind Kind, verb, module, target string, opts ...Option) Record {
	return Record{
		Op:      OpTmsh,
		Kind:    kind,
		Verb:    verb,
		Module:  module,
		Target:  target,
		Options: opts,
	}
}

// Guarded returns a copy of r that tolerates failure by echoing msg.
func (r Record) Guarded(msg string) Record {
	r.Guard = msg
	return r
}

// Opt returns an unquoted option.
func Opt(key, value string) Option {
	return Option{Key: key, Value: value}
}

// QuotedOpt returns an option whose value is double quoted.
func QuotedOpt(key, value string) Option {
	return Option{Key: key, Value: value, Quoted: true}
}
