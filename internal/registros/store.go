package registros

import (
	"errors"
	"strconv"

	"caderno-backend/internal/models"
	"caderno-backend/internal/storage"
)

var (
	// ErrNaoEncontrado indica que nenhum registro tem o id informado.
	ErrNaoEncontrado = errors.New("registro não encontrado")
	// ErrDuplicado indica que o par (num_doc_saida, item_saida) já existe.
	ErrDuplicado = errors.New("par num_doc_saida/item_saida já cadastrado")
)

// Confirmacao carrega os campos de confirmação de entrega de um registro.
// Ponteiro nulo indica chave ausente no payload: data_coleta ausente cai no
// padrão "Pendente" e anexos ausentes preservam a lista atual.
type Confirmacao struct {
	DataColeta    *string
	NomeMotorista string
	NotaFiscal    string
	Anexos        *[]string
}

// Store guarda os registros do caderno em uma coleção JSON.
type Store struct {
	col *storage.Collection
}

func NewStore(col *storage.Collection) *Store {
	return &Store{col: col}
}

func (s *Store) List() ([]models.Registro, error) {
	regs := []models.Registro{}
	if err := s.col.View(&regs); err != nil {
		return nil, err
	}
	return regs, nil
}

// Create insere um novo registro e devolve o id atribuído (máximo atual + 1,
// começando em 1 com o caderno vazio). Os campos de confirmação nascem nos
// valores padrão, independente do que veio no payload.
func (s *Store) Create(novo models.Registro) (int, error) {
	var regs []models.Registro
	id := 0
	err := s.col.Edit(&regs, func() (bool, error) {
		for _, r := range regs {
			if r.NumDocSaida == novo.NumDocSaida && r.ItemSaida == novo.ItemSaida {
				return false, ErrDuplicado
			}
		}
		id = 1
		for _, r := range regs {
			if r.ID >= id {
				id = r.ID + 1
			}
		}
		novo.ID = id
		novo.DataColeta = models.DataColetaPendente
		novo.NomeMotorista = ""
		novo.NotaFiscal = ""
		novo.Anexos = []string{}
		regs = append(regs, novo)
		return true, nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateConfirmation localiza o registro pelo id (comparado como string) e
// sobrescreve somente os campos de confirmação; o restante fica intacto.
func (s *Store) UpdateConfirmation(id string, conf Confirmacao) error {
	var regs []models.Registro
	return s.col.Edit(&regs, func() (bool, error) {
		for i := range regs {
			if strconv.Itoa(regs[i].ID) != id {
				continue
			}
			regs[i].DataColeta = models.DataColetaPendente
			if conf.DataColeta != nil {
				regs[i].DataColeta = *conf.DataColeta
			}
			regs[i].NomeMotorista = conf.NomeMotorista
			regs[i].NotaFiscal = conf.NotaFiscal
			if conf.Anexos != nil {
				regs[i].Anexos = *conf.Anexos
			}
			return true, nil
		}
		return false, ErrNaoEncontrado
	})
}

// Clear esvazia o caderno.
func (s *Store) Clear() error {
	return s.col.Clear()
}
