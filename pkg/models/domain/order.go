package domain

// OrderStatus is the lifecycle status of an order as recorded upstream.
type OrderStatus string

const (
	StatusPendente        OrderStatus = "Pendente"
	StatusEmProcessamento OrderStatus = "EmProcessamento"
	StatusConcluido       OrderStatus = "Concluido"
	StatusCancelado       OrderStatus = "Cancelado"
)

// OrderRecord is one customer order as delivered by the order system.
// Monetary fields arrive in whatever shape the upstream stored them
// (number, formatted string or null), so they stay untyped until the
// monetary normalizer has seen them.
type OrderRecord struct {
	ID          string       `json:"id"`
	Numero      string       `json:"numero"`
	Cliente     string       `json:"cliente"`
	Status      OrderStatus  `json:"status"`
	DataEntrada string       `json:"data_entrada,omitempty"`
	DataEntrega string       `json:"data_entrega,omitempty"`
	ValorFrete  any          `json:"valor_frete,omitempty"`
	TotalValue  any          `json:"total_value,omitempty"`
	Items       []ItemRecord `json:"items"`
}

// ItemRecord is one line item of an order. Quantity may live in the
// generic field or in one of the production-type specific counters;
// the unit price may be numeric or a formatted string. The resolver
// owns the priority chain between them.
type ItemRecord struct {
	Descricao     string   `json:"descricao,omitempty"`
	ItemName      string   `json:"item_name,omitempty"`
	Quantity      *float64 `json:"quantity,omitempty"`
	UnitPrice     *float64 `json:"unit_price,omitempty"`
	ValorUnitario string   `json:"valor_unitario,omitempty"`
	Subtotal      *float64 `json:"subtotal,omitempty"`
	Designer      string   `json:"designer,omitempty"`
	Vendedor      string   `json:"vendedor,omitempty"`
	TipoProducao  string   `json:"tipo_producao,omitempty"`
	FormaEnvio    string   `json:"forma_envio,omitempty"`

	QuantidadePaineis     *int `json:"quantidade_paineis,omitempty"`
	QuantidadeMochilas    *int `json:"quantidade_mochilas,omitempty"`
	QuantidadeTotem       *int `json:"quantidade_totem,omitempty"`
	QuantidadeLonas       *int `json:"quantidade_lonas,omitempty"`
	QuantidadeAdesivos    *int `json:"quantidade_adesivos,omitempty"`
	QuantidadeBanners     *int `json:"quantidade_banners,omitempty"`
	QuantidadeImpressao3D *int `json:"quantidade_impressao_3d,omitempty"`
}
