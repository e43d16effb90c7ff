package catalog

import "github.com/jhoicas/ElectroStock-api/internal/domain/entity"

// BuildTree reconstruye el bosque de categorías desde el listado plano.
// Dos pasadas: (1) indexa cada categoría por id con Children vacío,
// (2) cuelga cada nodo de su padre si el ParentID resuelve en el índice;
// si no resuelve (referencia huérfana) el nodo se promueve a raíz en vez de
// fallar — la categoría se sigue mostrando, no hay pérdida silenciosa.
// El orden de entrada se conserva en raíces e hijos. O(n).
// No muta el slice de entrada: trabaja sobre copias superficiales.
func BuildTree(flat []*entity.Category) []*entity.Category {
	index := make(map[string]*entity.Category, len(flat))
	nodes := make([]*entity.Category, 0, len(flat))
	for _, c := range flat {
		n := *c
		n.Children = []*entity.Category{}
		index[n.ID] = &n
		nodes = append(nodes, &n)
	}

	roots := []*entity.Category{}
	for _, n := range nodes {
		if n.ParentID != "" {
			if parent, ok := index[n.ParentID]; ok && parent != n {
				parent.Children = append(parent.Children, n)
				continue
			}
		}
		roots = append(roots, n)
	}
	return roots
}

// Flatten recorre el bosque en preorden y devuelve el listado plano.
// Aplana el árbol producido por BuildTree recuperando los pares
// (id, parentId) originales.
func Flatten(forest []*entity.Category) []*entity.Category {
	var flat []*entity.Category
	var walk func(nodes []*entity.Category)
	walk = func(nodes []*entity.Category) {
		for _, n := range nodes {
			flat = append(flat, n)
			walk(n.Children)
		}
	}
	walk(forest)
	return flat
}

// IndexByID indexa el listado plano por id (una pasada por lectura; evita
// escaneos lineales repetidos al validar padres y ciclos).
func IndexByID(flat []*entity.Category) map[string]*entity.Category {
	index := make(map[string]*entity.Category, len(flat))
	for _, c := range flat {
		index[c.ID] = c
	}
	return index
}

// WouldCreateCycle indica si asignar newParentID a categoryID convertiría a
// la categoría en su propio ancestro. Camina la cadena de padres desde
// newParentID; un eslabón que no resuelve corta la cadena (las referencias
// huérfanas se tratan como raíz).
func WouldCreateCycle(byID map[string]*entity.Category, categoryID, newParentID string) bool {
	if newParentID == "" {
		return false
	}
	seen := make(map[string]bool)
	for current := newParentID; current != ""; {
		if current == categoryID {
			return true
		}
		if seen[current] {
			// cadena de padres ya cíclica en los datos: no empeorarla
			return true
		}
		seen[current] = true
		parent, ok := byID[current]
		if !ok {
			return false
		}
		current = parent.ParentID
	}
	return false
}
