package models

// DataColetaPendente marca um registro ainda sem confirmação de entrega.
const DataColetaPendente = "Pendente"

// Registro é uma entrada do caderno de saídas. Os campos descritivos são
// strings opacas fornecidas pelo cliente; o par (num_doc_saida, item_saida)
// é único em todo o caderno.
type Registro struct {
	ID                 int      `json:"id"`
	NmSaida            string   `json:"nm_saida"`
	DescricaoSaida     string   `json:"descricao_saida"`
	QuantidadeSaida    string   `json:"quantidade_saida"`
	DestinoSaida       string   `json:"destino_saida"`
	ResponsavelEntrega string   `json:"responsavel_entrega"`
	DataDocSaida       string   `json:"data_doc_saida"`
	DepositoSaida      string   `json:"deposito_saida"`
	NumDocSaida        string   `json:"num_doc_saida"`
	ItemSaida          string   `json:"item_saida"`

	// Campos de confirmação de entrega, preenchidos depois do cadastro.
	DataColeta    string   `json:"data_coleta"`
	NomeMotorista string   `json:"nome_motorista"`
	NotaFiscal    string   `json:"nota_fiscal"`
	Anexos        []string `json:"anexos"`
}
