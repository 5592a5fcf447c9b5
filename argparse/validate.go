package argparse

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/dzonerzy/go-argparse/internal/prefix"
)

// validateValue runs the element's enumeration, predicate, and type checks on
// a single value. Enumeration matching may expand an abbreviation; the
// resolved value is returned.
func validateValue(e *element, opts *Options, value string) (string, error) {
	label := e.dashName() + " value"
	if len(e.enum) > 0 {
		m, err := prefix.Match(e.enum, value, label, opts.Exact)
		if err != nil {
			return "", newError(ErrorTypeValidation, err.Error()).WithElement(e.name)
		}
		value = m
	}
	if e.validate != nil && !e.validate(value) {
		if e.errorMsg != "" {
			msg := strings.NewReplacer("$arg", value, "$name", e.name).Replace(e.errorMsg)
			return "", newError(ErrorTypeValidation, msg).WithElement(e.name)
		}
		msg := e.validateMsg
		if msg == "" {
			msg = "validation"
		}
		return "", errorf(ErrorTypeValidation, "%s value %q fails %s",
			e.dashName(), value, msg).WithElement(e.name)
	}
	if e.typeName != "" && !checkType(e.typeName, value) {
		return "", errorf(ErrorTypeBadType, "%s value %q is not of the type %s",
			e.dashName(), value, e.typeName).WithElement(e.name)
	}
	return value, nil
}

// checkType tests value membership in one of the allowed type classes. The
// empty string satisfies every class.
func checkType(typeName, value string) bool {
	if value == "" {
		return true
	}
	switch typeName {
	case "alnum":
		return allRunes(value, func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) })
	case "alpha":
		return allRunes(value, unicode.IsLetter)
	case "ascii":
		for i := 0; i < len(value); i++ {
			if value[i] >= 0x80 {
				return false
			}
		}
		return true
	case "boolean":
		return isBoolean(value)
	case "control":
		return allRunes(value, unicode.IsControl)
	case "dict":
		return len(strings.Fields(value))%2 == 0
	case "digit":
		return allRunes(value, unicode.IsDigit)
	case "double":
		_, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		return err == nil
	case "graph":
		return allRunes(value, func(r rune) bool { return unicode.IsGraphic(r) && !unicode.IsSpace(r) })
	case "integer":
		_, err := strconv.ParseInt(strings.TrimSpace(value), 0, 32)
		return err == nil
	case "list":
		return true
	case "lower":
		return allRunes(value, unicode.IsLower)
	case "print":
		return allRunes(value, unicode.IsPrint)
	case "punct":
		return allRunes(value, unicode.IsPunct)
	case "space":
		return allRunes(value, unicode.IsSpace)
	case "upper":
		return allRunes(value, unicode.IsUpper)
	case "wideinteger":
		_, err := strconv.ParseInt(strings.TrimSpace(value), 0, 64)
		return err == nil
	case "wordchar":
		return allRunes(value, func(r rune) bool {
			return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
		})
	case "xdigit":
		for i := 0; i < len(value); i++ {
			c := value[i]
			if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F') {
				return false
			}
		}
		return true
	}
	return false
}

func allRunes(s string, pred func(rune) bool) bool {
	for _, r := range s {
		if !pred(r) {
			return false
		}
	}
	return true
}

// booleanWords are the accepted boolean spellings; any non-empty prefix of a
// word matches, case-insensitively.
var booleanWords = []string{"true", "false", "yes", "no", "on", "off"}

func isBoolean(value string) bool {
	if value == "0" || value == "1" {
		return true
	}
	v := strings.ToLower(value)
	for _, w := range booleanWords {
		if strings.HasPrefix(w, v) {
			return true
		}
	}
	return false
}
