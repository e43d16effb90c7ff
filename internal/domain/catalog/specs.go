package catalog

import (
	"math"
	"strconv"
	"strings"

	"github.com/jhoicas/ElectroStock-api/internal/domain"
	"github.com/jhoicas/ElectroStock-api/internal/domain/entity"
)

// NormalizeOptions convierte el string de autoría separado por comas en el
// array persistido: split por ",", trim de cada pieza, descarta vacíos y
// colapsa duplicados conservando la primera aparición. Ocurre una sola vez,
// al guardar el esquema — nunca en lectura, así el array almacenado ya está
// siempre normalizado.
func NormalizeOptions(raw string) []string {
	seen := make(map[string]bool)
	options := []string{}
	for _, piece := range strings.Split(raw, ",") {
		opt := strings.TrimSpace(piece)
		if opt == "" || seen[opt] {
			continue
		}
		seen[opt] = true
		options = append(options, opt)
	}
	return options
}

// ValidateDefinitions valida las definiciones de especificación de una
// categoría antes de persistir: nombre requerido, tipo soportado y DROPDOWN
// con al menos una opción ya normalizada. Recolecta todos los errores.
func ValidateDefinitions(specs []entity.SpecDefinition) domain.ValidationErrors {
	var errs domain.ValidationErrors
	for i, s := range specs {
		field := "specifications[" + strconv.Itoa(i) + "]"
		if strings.TrimSpace(s.Name) == "" {
			errs = errs.Add(field+".name", "el nombre del atributo es requerido")
		}
		if !entity.ValidSpecType(s.Type) {
			errs = errs.Add(field+".type", "tipo no soportado: "+s.Type)
		}
		if s.Type == entity.SpecTypeDropdown && len(s.Options) == 0 {
			errs = errs.Add(field+".options", "un DROPDOWN necesita al menos una opción")
		}
	}
	return errs
}

// ValidateAttributes valida y normaliza el mapa crudo de atributos de un
// producto contra el esquema de su categoría:
//
//   - TEXT: string no vacío tras trim.
//   - NUMBER: el string debe parsear completo como número finito; se
//     almacena como valor numérico.
//   - DROPDOWN: igualdad exacta (sensible a mayúsculas) con una opción.
//
// Todas las especificaciones del esquema son requeridas. Las claves de raw
// que ya no existen en el esquema se descartan y se devuelven en stale para
// que el caller las reporte como advertencia. Los errores de campo se
// recolectan completos antes de retornar (no fail-fast).
func ValidateAttributes(schemas []entity.SpecDefinition, raw map[string]string) (entity.AttributeMap, []string, domain.ValidationErrors) {
	var errs domain.ValidationErrors
	values := make(entity.AttributeMap, len(schemas))

	known := make(map[string]bool, len(schemas))
	for _, schema := range schemas {
		known[schema.ID] = true
		input, present := raw[schema.ID]

		switch schema.Type {
		case entity.SpecTypeText:
			trimmed := strings.TrimSpace(input)
			if !present || trimmed == "" {
				errs = errs.Add(schema.ID, schema.Name+" es requerido")
				continue
			}
			values[schema.ID] = entity.TextValue(trimmed)

		case entity.SpecTypeNumber:
			trimmed := strings.TrimSpace(input)
			if !present || trimmed == "" {
				errs = errs.Add(schema.ID, schema.Name+" es requerido")
				continue
			}
			n, err := strconv.ParseFloat(trimmed, 64)
			if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
				errs = errs.Add(schema.ID, schema.Name+" debe ser numérico")
				continue
			}
			values[schema.ID] = entity.NumberValue(n)

		case entity.SpecTypeDropdown:
			if !present || strings.TrimSpace(input) == "" {
				errs = errs.Add(schema.ID, schema.Name+" es requerido")
				continue
			}
			if !containsExact(schema.Options, input) {
				errs = errs.Add(schema.ID, "valor fuera de las opciones de "+schema.Name)
				continue
			}
			values[schema.ID] = entity.ChoiceValue(input)

		default:
			errs = errs.Add(schema.ID, "tipo de especificación desconocido")
		}
	}

	// claves obsoletas: existían con un esquema anterior pero ya no mapean
	var stale []string
	for key := range raw {
		if !known[key] {
			stale = append(stale, key)
		}
	}

	if len(errs) > 0 {
		return nil, stale, errs
	}
	return values, stale, nil
}

func containsExact(options []string, value string) bool {
	for _, opt := range options {
		if opt == value {
			return true
		}
	}
	return false
}
