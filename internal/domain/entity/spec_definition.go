package entity

// Tipos de especificación por categoría.
const (
	SpecTypeText     = "TEXT"
	SpecTypeNumber   = "NUMBER"
	SpecTypeDropdown = "DROPDOWN"
)

// SpecDefinition define un atributo tipado de una categoría.
// El ID es estable: editar nombre o tipo no lo cambia, así los mapas de
// atributos históricos de los productos siguen siendo direccionables.
// Options solo aplica a DROPDOWN y se persiste ya normalizado (array,
// nunca el string crudo separado por comas del payload de guardado).
type SpecDefinition struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Type    string   `json:"type"`
	Options []string `json:"options,omitempty"`
}

// ValidSpecType indica si el tipo es uno de los soportados.
func ValidSpecType(t string) bool {
	return t == SpecTypeText || t == SpecTypeNumber || t == SpecTypeDropdown
}
