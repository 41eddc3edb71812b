package referencias

import (
	"errors"

	"caderno-backend/internal/models"
	"caderno-backend/internal/storage"
)

// ErrNaoEncontrada indica que nenhuma referência tem o nm informado.
var ErrNaoEncontrada = errors.New("referência não encontrada")

// Store guarda a tabela de referências NM/Descrição em uma coleção JSON.
type Store struct {
	col *storage.Collection
}

func NewStore(col *storage.Collection) *Store {
	return &Store{col: col}
}

func (s *Store) List() ([]models.Referencia, error) {
	refs := []models.Referencia{}
	if err := s.col.View(&refs); err != nil {
		return nil, err
	}
	return refs, nil
}

// Upsert substitui no lugar as referências existentes com o mesmo nm e anexa
// as inéditas ao final, na ordem em que chegam no lote.
func (s *Store) Upsert(batch []models.Referencia) error {
	var refs []models.Referencia
	return s.col.Edit(&refs, func() (bool, error) {
		index := make(map[string]int, len(refs))
		for i, ref := range refs {
			index[ref.NM()] = i
		}
		for _, nova := range batch {
			if i, ok := index[nova.NM()]; ok {
				refs[i] = nova
				continue
			}
			index[nova.NM()] = len(refs)
			refs = append(refs, nova)
		}
		return true, nil
	})
}

// Delete remove todas as referências com o nm informado.
func (s *Store) Delete(nm string) error {
	var refs []models.Referencia
	return s.col.Edit(&refs, func() (bool, error) {
		kept := refs[:0]
		for _, ref := range refs {
			if ref.NM() != nm {
				kept = append(kept, ref)
			}
		}
		if len(kept) == len(refs) {
			return false, ErrNaoEncontrada
		}
		refs = kept
		return true, nil
	})
}

// Clear esvazia a tabela de referências.
func (s *Store) Clear() error {
	return s.col.Clear()
}
