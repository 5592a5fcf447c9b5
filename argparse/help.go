package argparse

import (
	"strings"

	"github.com/dzonerzy/go-argparse/internal/prefix"
)

// buildHelp renders the help message for a schema, wrapped at the given
// terminal width. Elements marked -hsuppress are omitted.
func buildHelp(s *schema, width int) string {
	if width < 20 {
		width = 20
	}
	var sb strings.Builder
	if s.opts.HelpText != "" {
		sb.WriteString(wrap(s.opts.HelpText, width, "", ""))
		sb.WriteByte('\n')
	}

	var switches, parameters []*element
	for _, e := range s.elements {
		if e.hsuppress {
			continue
		}
		if e.isSwitch() {
			switches = append(switches, e)
		} else {
			parameters = append(parameters, e)
		}
	}

	if len(switches) > 0 || s.opts.Help {
		sb.WriteString("Switches:\n")
		for _, e := range switches {
			writeHelpLine(&sb, helpLabel(e), helpDescription(e, s.opts), width)
		}
		if s.opts.Help {
			writeHelpLine(&sb, s.opts.helpToken(),
				"Display this help message and abort parsing.", width)
		}
	}
	if len(parameters) > 0 {
		sb.WriteString("Parameters:\n")
		for _, e := range parameters {
			writeHelpLine(&sb, helpLabel(e), helpDescription(e, s.opts), width)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func helpLabel(e *element) string {
	if e.isSwitch() {
		label := e.displayName()
		if e.hasArg {
			label += " value"
		}
		return label
	}
	if e.catchall {
		return e.name + " ..."
	}
	return e.name
}

// helpDescription assembles the per-element description sentences.
func helpDescription(e *element, opts *Options) string {
	var parts []string
	if e.helpText != "" {
		parts = append(parts, strings.TrimRight(e.helpText, ".")+".")
	}
	if e.isSwitch() {
		if e.required {
			parts = append(parts, "Required.")
		}
		if e.hasArg && e.optional {
			parts = append(parts, "Argument is optional.")
		}
		if e.standalone {
			parts = append(parts, "Overrides all other arguments.")
		}
	} else {
		if e.optional {
			parts = append(parts, "Optional.")
		}
		if e.catchall {
			parts = append(parts, "Repeatable.")
		}
	}
	if len(e.enum) > 0 {
		parts = append(parts, "Value must be one of "+prefix.JoinOr(e.enum)+".")
	}
	if e.typeName != "" {
		parts = append(parts, "Value must be of type "+e.typeName+".")
	}
	if e.hasDefault {
		parts = append(parts, "Default value is "+e.defaultValue+".")
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, " ")
}

func writeHelpLine(sb *strings.Builder, label, desc string, width int) {
	line := label
	if desc != "" {
		line += " - " + desc
	}
	sb.WriteString(wrap(line, width, "    ", "        "))
	sb.WriteByte('\n')
}

// wrap word-wraps text at width, prefixing the first line with indent and
// continuation lines with hang.
func wrap(text string, width int, indent, hang string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return indent
	}
	var sb strings.Builder
	line := indent + words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			sb.WriteString(line)
			sb.WriteByte('\n')
			line = hang + w
			continue
		}
		line += " " + w
	}
	sb.WriteString(line)
	return sb.String()
}
