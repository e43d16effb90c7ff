package entity

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Clases de valor de especificación (unión etiquetada).
const (
	SpecValueText   = "TEXT"
	SpecValueNumber = "NUMBER"
	SpecValueChoice = "CHOICE"
)

// SpecValue es el valor tipado de un atributo de producto: texto libre,
// número o una opción de un DROPDOWN. Se serializa plano en JSON (string o
// número), nunca anidado.
type SpecValue struct {
	Kind   string
	Text   string
	Number float64
}

// TextValue construye un valor de texto.
func TextValue(s string) SpecValue { return SpecValue{Kind: SpecValueText, Text: s} }

// NumberValue construye un valor numérico.
func NumberValue(f float64) SpecValue { return SpecValue{Kind: SpecValueNumber, Number: f} }

// ChoiceValue construye una opción elegida de un DROPDOWN.
func ChoiceValue(s string) SpecValue { return SpecValue{Kind: SpecValueChoice, Text: s} }

// String devuelve la representación para mostrar.
func (v SpecValue) String() string {
	if v.Kind == SpecValueNumber {
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	}
	return v.Text
}

// MarshalJSON emite número JSON para NUMBER y string para TEXT/CHOICE.
func (v SpecValue) MarshalJSON() ([]byte, error) {
	if v.Kind == SpecValueNumber {
		return json.Marshal(v.Number)
	}
	return json.Marshal(v.Text)
}

// UnmarshalJSON infiere la clase desde el JSON persistido: número → NUMBER,
// string → TEXT. CHOICE solo se distingue validando contra el esquema de la
// categoría; para lectura/display ambos se comportan igual.
func (v *SpecValue) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*v = NumberValue(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = TextValue(s)
		return nil
	}
	return fmt.Errorf("spec value: JSON inesperado %q", string(data))
}

// AttributeMap es el mapa plano specID → valor de un producto.
type AttributeMap map[string]SpecValue
