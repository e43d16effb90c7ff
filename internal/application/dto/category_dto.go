package dto

// SaveSpecPayload especificación tal como llega en el payload de guardado:
// Options es el string crudo separado por comas que escribe el autor; se
// normaliza una sola vez al guardar (nunca en lectura). ID vacío = nueva.
type SaveSpecPayload struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Options string `json:"options"`
}

// SaveCategoryRequest payload de creación/edición de categoría.
type SaveCategoryRequest struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	ParentID       string            `json:"parentId"`
	Specifications []SaveSpecPayload `json:"specifications"`
}

// SpecResponse especificación en respuestas: Options ya es siempre el array
// normalizado, jamás el string crudo.
type SpecResponse struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Type    string   `json:"type"`
	Options []string `json:"options,omitempty"`
}

// CategoryResponse categoría en el listado plano. Specifications siempre es
// un array, aunque esté vacío (invariante de compatibilidad del formato).
type CategoryResponse struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	ParentID       string         `json:"parentId"`
	Specifications []SpecResponse `json:"specifications"`
}

// CategoryTreeResponse nodo del bosque con hijos poblados.
type CategoryTreeResponse struct {
	CategoryResponse
	Children []CategoryTreeResponse `json:"children"`
}
