// Package category mantiene en memoria la colección de categorías de precio
// y la única edición pendiente del formulario.
//
// El formulario trabaja en dos modos: creación (sin edición pendiente) y
// edición (PendingEdit apunta a un ID existente). BeginEdit pasa a edición,
// Update y CancelEdit vuelven a creación.
package category

import (
	"sync"

	"github.com/jhoicas/category-admin/internal/domain"
	"github.com/jhoicas/category-admin/internal/domain/entity"
)

// EmptyStoreID es el ID asignado por Add cuando la colección está vacía.
const EmptyStoreID int64 = 0

// Store colección autoritativa de categorías. Los IDs son únicos y
// PendingEdit, cuando existe, referencia un ID presente en la colección.
type Store struct {
	mu      sync.Mutex
	items   []entity.Category
	pending *int64
}

// NewStore construye el store con las categorías iniciales. Si seed repite
// un ID solo se conserva la primera aparición.
func NewStore(seed []entity.Category) *Store {
	s := &Store{items: make([]entity.Category, 0, len(seed))}
	seen := make(map[int64]struct{}, len(seed))
	for _, c := range seed {
		if _, dup := seen[c.ID]; dup {
			continue
		}
		seen[c.ID] = struct{}{}
		s.items = append(s.items, c)
	}
	return s
}

// List devuelve una copia de la colección en su orden actual.
func (s *Store) List() []entity.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Category, len(s.items))
	copy(out, s.items)
	return out
}

// Len cantidad de categorías.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Get devuelve una copia de la categoría con el ID indicado.
func (s *Store) Get(id int64) (entity.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return entity.Category{}, domain.ErrNotFound
	}
	return s.items[i], nil
}

// PendingEdit devuelve el ID en edición y si existe.
func (s *Store) PendingEdit() (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return 0, false
	}
	return *s.pending, true
}

// BeginEdit marca la categoría id como edición pendiente y devuelve una copia
// de sus valores para precargar el formulario. Una llamada mientras ya hay
// otra edición la reemplaza.
func (s *Store) BeginEdit(id int64) (entity.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return entity.Category{}, domain.ErrNotFound
	}
	s.pending = &id
	return s.items[i], nil
}

// CancelEdit descarta la edición pendiente, si la hay.
func (s *Store) CancelEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = nil
}

// Add crea una categoría con ID = min(IDs) - 1 (EmptyStoreID si no hay
// ninguna) y la inserta al inicio. No consulta la edición pendiente.
func (s *Store) Add(f entity.CategoryFields) entity.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := entity.Category{ID: s.nextID()}
	c.Apply(f)
	s.items = append([]entity.Category{c}, s.items...)
	return c
}

// Update fusiona f sobre la categoría en edición y vuelve al modo creación.
// Devuelve domain.ErrNoPendingEdit si no hay edición y domain.ErrNotFound si
// la categoría ya no existe; en ambos casos la colección no cambia.
func (s *Store) Update(f entity.CategoryFields) (entity.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return entity.Category{}, domain.ErrNoPendingEdit
	}
	i := s.indexOf(*s.pending)
	if i < 0 {
		return entity.Category{}, domain.ErrNotFound
	}
	s.items[i].Apply(f)
	s.pending = nil
	return s.items[i], nil
}

// Remove elimina la categoría id. Si era la edición pendiente, la descarta.
func (s *Store) Remove(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return domain.ErrNotFound
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	if s.pending != nil && *s.pending == id {
		s.pending = nil
	}
	return nil
}

func (s *Store) indexOf(id int64) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) nextID() int64 {
	if len(s.items) == 0 {
		return EmptyStoreID
	}
	minID := s.items[0].ID
	for _, c := range s.items[1:] {
		if c.ID < minID {
			minID = c.ID
		}
	}
	return minID - 1
}
