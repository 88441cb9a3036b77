package core

// validate.go provides row-level validation for CSV data before insertion.
//
// ValidateRow is a pure function: the same raw row always yields the same
// decision, independent of other rows in the file. Validation is fail-fast
// per row: the first failing check produces the row's error and the
// remaining fields are not inspected.

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// emailRegex is the RFC-lite pattern used by the import pipeline: a local
// part, an @, and a domain containing at least one dot. No whitespace.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateRow checks a raw CSV row against the entity schema and returns
// either the typed record or a RowError carrying the 1-based data line
// number and the original raw row.
//
// Checks run in this order:
//  1. Combined required-field check, emitting the entity's fixed message.
//  2. Per field in schema order: email format, enum membership, and
//     required-numeric coercion.
//  3. Coercion and normalization: strings trimmed, integers parsed base 10,
//     booleans normalized from "true"/"1", defaults applied to absent
//     optional fields.
func ValidateRow(raw map[string]string, line int, def EntityDefinition) (Record, *RowError) {
	fail := func(msg string) (Record, *RowError) {
		return nil, &RowError{Line: line, Message: msg, Data: raw}
	}

	for _, spec := range def.Fields {
		if spec.Required && strings.TrimSpace(raw[spec.Name]) == "" {
			return fail(def.Messages.Required)
		}
	}

	rec := make(Record, len(def.Fields))
	for _, spec := range def.Fields {
		val := strings.TrimSpace(raw[spec.Name])

		switch spec.Type {
		case FieldText:
			if val == "" {
				applyDefault(rec, spec)
				continue
			}
			rec[spec.Name] = normalize(spec, val)

		case FieldEmail:
			if val == "" {
				applyDefault(rec, spec)
				continue
			}
			if !emailRegex.MatchString(val) {
				return fail(invalidMessage(spec))
			}
			rec[spec.Name] = normalize(spec, val)

		case FieldEnum:
			if val == "" {
				applyDefault(rec, spec)
				continue
			}
			if !slices.Contains(spec.EnumValues, val) {
				return fail(invalidMessage(spec))
			}
			rec[spec.Name] = normalize(spec, val)

		case FieldInt:
			if val == "" {
				applyDefault(rec, spec)
				continue
			}
			n, err := strconv.Atoi(val)
			if err != nil || (spec.Positive && n <= 0) {
				if spec.Required {
					return fail(invalidMessage(spec))
				}
				// Invalid optional numbers are treated as absent.
				applyDefault(rec, spec)
				continue
			}
			rec[spec.Name] = n

		case FieldFloat:
			if val == "" {
				applyDefault(rec, spec)
				continue
			}
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || (spec.Positive && f <= 0) {
				if spec.Required {
					return fail(invalidMessage(spec))
				}
				applyDefault(rec, spec)
				continue
			}
			rec[spec.Name] = f

		case FieldBool:
			// Normalization, never a validation failure: only the literals
			// "true" and "1" coerce to true.
			rec[spec.Name] = val == "true" || val == "1"
		}
	}

	return rec, nil
}

// applyDefault stores the schema default for an absent optional field.
// Fields without a default are omitted from the record entirely, so the
// database sees NULL rather than an empty string or zero.
func applyDefault(rec Record, spec FieldSpec) {
	if spec.Default != nil {
		rec[spec.Name] = spec.Default
	}
}

// normalize applies the field's Normalizer after validation passed.
func normalize(spec FieldSpec, val string) string {
	if spec.Normalizer != nil {
		return spec.Normalizer(val)
	}
	return val
}

// invalidMessage returns the message for a value that failed its format
// check. Schemas set the exact wording; the fallbacks cover fields where
// no dedicated wording exists.
func invalidMessage(spec FieldSpec) string {
	if spec.Invalid != "" {
		return spec.Invalid
	}
	if spec.Type == FieldEnum {
		return fmt.Sprintf("%s invalide (%s)", spec.Name, strings.Join(spec.EnumValues, ", "))
	}
	return fmt.Sprintf("%s invalide", spec.Name)
}
