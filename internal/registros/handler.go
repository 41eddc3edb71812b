package registros

import (
	"encoding/json"
	"errors"
	"fmt"

	"caderno-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// FlexID aceita o id como string ou número, conforme o estado do formulário
// no frontend.
type FlexID string

func (f *FlexID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexID(n.String())
	return nil
}

// SaidaRequest cobre os dois caminhos do POST: cadastro de saída (id ausente
// ou "0") e confirmação de entrega (id preenchido).
type SaidaRequest struct {
	ID                 FlexID `json:"id"`
	NmSaida            string `json:"nm_saida"`
	DescricaoSaida     string `json:"descricao_saida"`
	QuantidadeSaida    string `json:"quantidade_saida"`
	DestinoSaida       string `json:"destino_saida"`
	ResponsavelEntrega string `json:"responsavel_entrega"`
	DataDocSaida       string `json:"data_doc_saida"`
	DepositoSaida      string `json:"deposito_saida"`
	NumDocSaida        string `json:"num_doc_saida"`
	ItemSaida          string `json:"item_saida"`

	DataColeta    *string   `json:"data_coleta"`
	NomeMotorista string    `json:"nome_motorista"`
	NotaFiscal    string    `json:"nota_fiscal"`
	Anexos        *[]string `json:"anexos"`
}

// GET /api/registros
func ListHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		regs, err := store.List()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao carregar os registros: "+err.Error())
		}
		return c.JSON(regs)
	}
}

// POST /api/registros
func SaveHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SaidaRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		if body.ID != "" && body.ID != "0" {
			conf := Confirmacao{
				DataColeta:    body.DataColeta,
				NomeMotorista: body.NomeMotorista,
				NotaFiscal:    body.NotaFiscal,
				Anexos:        body.Anexos,
			}
			if err := store.UpdateConfirmation(string(body.ID), conf); err != nil {
				if errors.Is(err, ErrNaoEncontrado) {
					return fiber.NewError(fiber.StatusNotFound, "Registro não encontrado para atualização.")
				}
				return fiber.NewError(fiber.StatusInternalServerError, "Falha ao atualizar o registro: "+err.Error())
			}
			return c.JSON(fiber.Map{
				"message": fmt.Sprintf("Registro %s atualizado com sucesso.", body.ID),
			})
		}

		if body.NumDocSaida == "" || body.ItemSaida == "" {
			return fiber.NewError(fiber.StatusBadRequest, "num_doc_saida e item_saida são obrigatórios")
		}

		novo := models.Registro{
			NmSaida:            body.NmSaida,
			DescricaoSaida:     body.DescricaoSaida,
			QuantidadeSaida:    body.QuantidadeSaida,
			DestinoSaida:       body.DestinoSaida,
			ResponsavelEntrega: body.ResponsavelEntrega,
			DataDocSaida:       body.DataDocSaida,
			DepositoSaida:      body.DepositoSaida,
			NumDocSaida:        body.NumDocSaida,
			ItemSaida:          body.ItemSaida,
		}
		id, err := store.Create(novo)
		if err != nil {
			if errors.Is(err, ErrDuplicado) {
				return fiber.NewError(fiber.StatusConflict,
					fmt.Sprintf("O par N° Doc (%s) e Item (%s) já existe no cadastro.", body.NumDocSaida, body.ItemSaida))
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao cadastrar o registro: "+err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "Registro cadastrado com sucesso!",
			"id":      id,
		})
	}
}

// DELETE /api/registros
// Exclusão individual fica fora do escopo desta versão.
func DeleteHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotImplemented).JSON(fiber.Map{
			"message": "Ainda não implementado",
		})
	}
}
