package validation

import (
	"encoding/json"
	"fmt"
	"time"
	"unicode/utf8"
)

const dateLayout = "2006-01-02"

// Validate checks a payload against an ordered rule list and returns every
// violation found, in rule order. An empty slice means the payload is valid.
//
// Every rule is always evaluated; nothing short-circuits across fields, so a
// client can fix all problems in one round trip. The function is pure: no
// I/O, no shared state.
func Validate(payload Payload, rules []Rule) []string {
	var violations []string

	for _, rule := range rules {
		value, present := payload[rule.Name]
		if !present {
			if rule.Required {
				violations = append(violations, fmt.Sprintf("El campo '%s' es obligatorio.", rule.Name))
			}
			continue
		}

		switch rule.Kind {
		case KindText:
			s, ok := value.(string)
			if !ok {
				violations = append(violations, fmt.Sprintf("El campo '%s' debe ser una cadena de texto.", rule.Name))
				continue
			}
			// The two bound checks are deliberately independent: a table
			// misconfigured with minimum > maximum makes both fire.
			length := utf8.RuneCountInString(s)
			if length < rule.Minimum {
				violations = append(violations, fmt.Sprintf("El campo '%s' debe tener al menos %d caracteres.", rule.Name, rule.Minimum))
			}
			if length > rule.Maximum {
				violations = append(violations, fmt.Sprintf("El campo '%s' no debe exceder los %d caracteres.", rule.Name, rule.Maximum))
			}

		case KindNumber:
			// Minimum/Maximum are present on number rules but not evaluated;
			// only the literal's type is checked.
			if _, ok := value.(json.Number); !ok {
				violations = append(violations, fmt.Sprintf("El campo '%s' debe ser numérico.", rule.Name))
			}

		case KindBoolean:
			if _, ok := value.(bool); !ok {
				violations = append(violations, fmt.Sprintf("El campo '%s' debe ser booleano.", rule.Name))
			}

		case KindDate:
			s, ok := value.(string)
			if !ok || utf8.RuneCountInString(s) != rule.Minimum {
				violations = append(violations, fmt.Sprintf("El campo '%s' debe tener una longitud de %d caracteres.", rule.Name, rule.Minimum))
				continue
			}
			if _, err := time.Parse(dateLayout, s); err != nil {
				violations = append(violations, fmt.Sprintf("El campo '%s' debe ser una fecha válida con formato yyyy-MM-dd.", rule.Name))
			}

		default:
			// Unreachable for the closed Kind set; guards against a table typo.
			violations = append(violations, fmt.Sprintf("El campo '%s' tiene un tipo de dato no reconocido.", rule.Name))
		}
	}

	return violations
}
