package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ElectroStock-api/internal/domain/catalog"
	"github.com/jhoicas/ElectroStock-api/internal/domain/entity"
)

// El string de autoría " Red, Blue ,Blue" debe normalizar a ["Red","Blue"]:
// trim, vacíos descartados y duplicados colapsados conservando la primera
// aparición.
func TestNormalizeOptions_TrimFiltraYColapsa(t *testing.T) {
	assert.Equal(t, []string{"Red", "Blue"}, catalog.NormalizeOptions(" Red, Blue ,Blue"))
	assert.Equal(t, []string{"220V", "110V"}, catalog.NormalizeOptions("220V,,  ,110V"))
	assert.Empty(t, catalog.NormalizeOptions("  ,, "))
	assert.Empty(t, catalog.NormalizeOptions(""))
}

func dropdownSpec(id, name string, options ...string) entity.SpecDefinition {
	return entity.SpecDefinition{ID: id, Name: name, Type: entity.SpecTypeDropdown, Options: options}
}

// Un valor DROPDOWN se acepta si y solo si iguala exactamente (sensible a
// mayúsculas) una de las opciones; "Green" contra ["Red","Blue"] se rechaza
// con un error sobre esa especificación.
func TestValidateAttributes_DropdownFueraDeOpciones(t *testing.T) {
	schemas := []entity.SpecDefinition{dropdownSpec("s1", "Color", "Red", "Blue")}

	_, _, errs := catalog.ValidateAttributes(schemas, map[string]string{"s1": "Green"})
	require.Len(t, errs, 1)
	assert.Equal(t, "s1", errs[0].Field)

	// sensible a mayúsculas: "red" no es "Red"
	_, _, errs = catalog.ValidateAttributes(schemas, map[string]string{"s1": "red"})
	require.Len(t, errs, 1)

	values, stale, errs := catalog.ValidateAttributes(schemas, map[string]string{"s1": "Blue"})
	require.Nil(t, errs)
	assert.Empty(t, stale)
	assert.Equal(t, entity.ChoiceValue("Blue"), values["s1"])
}

// Vacío y solo-espacios se rechazan para todo tipo.
func TestValidateAttributes_RechazaVacioYEspacios(t *testing.T) {
	schemas := []entity.SpecDefinition{dropdownSpec("s1", "Color", "Red")}

	for _, input := range []string{"", "   "} {
		_, _, errs := catalog.ValidateAttributes(schemas, map[string]string{"s1": input})
		require.Len(t, errs, 1, "input %q debe rechazarse", input)
	}

	// clave ausente cuenta como requerido faltante
	_, _, errs := catalog.ValidateAttributes(schemas, map[string]string{})
	require.Len(t, errs, 1)
}

func TestValidateAttributes_Number(t *testing.T) {
	schemas := []entity.SpecDefinition{{ID: "s1", Name: "Potencia", Type: entity.SpecTypeNumber}}

	values, _, errs := catalog.ValidateAttributes(schemas, map[string]string{"s1": " 60.5 "})
	require.Nil(t, errs)
	assert.Equal(t, entity.NumberValue(60.5), values["s1"])

	// debe parsear completo: "60W" no es un número
	_, _, errs = catalog.ValidateAttributes(schemas, map[string]string{"s1": "60W"})
	require.Len(t, errs, 1)

	// infinito no es un número finito almacenable
	_, _, errs = catalog.ValidateAttributes(schemas, map[string]string{"s1": "Inf"})
	require.Len(t, errs, 1)
}

func TestValidateAttributes_TextHaceTrim(t *testing.T) {
	schemas := []entity.SpecDefinition{{ID: "s1", Name: "Marca", Type: entity.SpecTypeText}}
	values, _, errs := catalog.ValidateAttributes(schemas, map[string]string{"s1": "  Philips  "})
	require.Nil(t, errs)
	assert.Equal(t, entity.TextValue("Philips"), values["s1"])
}

// Los errores se recolectan todos antes de retornar, no fail-fast: con tres
// campos inválidos el caller recibe los tres de una vez.
func TestValidateAttributes_RecolectaTodosLosErrores(t *testing.T) {
	schemas := []entity.SpecDefinition{
		{ID: "s1", Name: "Marca", Type: entity.SpecTypeText},
		{ID: "s2", Name: "Potencia", Type: entity.SpecTypeNumber},
		dropdownSpec("s3", "Color", "Red", "Blue"),
	}
	raw := map[string]string{"s1": "  ", "s2": "abc", "s3": "Green"}

	_, _, errs := catalog.ValidateAttributes(schemas, raw)
	require.Len(t, errs, 3)
	fields := []string{errs[0].Field, errs[1].Field, errs[2].Field}
	assert.ElementsMatch(t, []string{"s1", "s2", "s3"}, fields)
}

// Claves que ya no existen en el esquema actual se descartan del resultado y
// se reportan en stale (el caller decide cómo advertirlo).
func TestValidateAttributes_ClavesObsoletas(t *testing.T) {
	schemas := []entity.SpecDefinition{{ID: "s1", Name: "Marca", Type: entity.SpecTypeText}}
	raw := map[string]string{"s1": "Philips", "viejo": "valor de un esquema anterior"}

	values, stale, errs := catalog.ValidateAttributes(schemas, raw)
	require.Nil(t, errs)
	assert.Equal(t, []string{"viejo"}, stale)
	_, ok := values["viejo"]
	assert.False(t, ok, "la clave obsoleta no debe quedar en el mapa validado")
}

func TestValidateDefinitions(t *testing.T) {
	// válido: nombre presente, DROPDOWN con opciones
	errs := catalog.ValidateDefinitions([]entity.SpecDefinition{
		{ID: "s1", Name: "Color", Type: entity.SpecTypeDropdown, Options: []string{"Red"}},
		{ID: "s2", Name: "Marca", Type: entity.SpecTypeText},
	})
	assert.Nil(t, errs)

	// inválido: nombre vacío, tipo desconocido y DROPDOWN sin opciones
	errs = catalog.ValidateDefinitions([]entity.SpecDefinition{
		{ID: "s1", Name: "  ", Type: entity.SpecTypeText},
		{ID: "s2", Name: "Voltaje", Type: "CHECKBOX"},
		{ID: "s3", Name: "Color", Type: entity.SpecTypeDropdown, Options: nil},
	})
	require.Len(t, errs, 3)
}
