package catalog

// Inputs de creación, patches de actualización parcial y filtros de
// búsqueda, uno por entidad. En los patches los campos opcionales son
// punteros: nil = "no vino en el request, conservar el valor actual".
// El id del patch es obligatorio y el id del registro nunca se pisa.

// ===== Brand =====

type BrandInput struct {
	Name string `json:"name"`
}

type BrandPatch struct {
	ID     LooseInt   `json:"id"`
	Name   *string    `json:"name"`
	Active *LooseBool `json:"is_active"`
}

type BrandFilter struct {
	ID     int
	Q      string
	Active string // "true" | "false" | cualquier otra cosa = sin filtro
}

// ===== Model =====

type ModelInput struct {
	Name    string   `json:"name"`
	Year    LooseInt `json:"year"`
	Version string   `json:"version"`
	BrandID LooseInt `json:"brand_id"`
}

type ModelPatch struct {
	ID      LooseInt   `json:"id"`
	Name    *string    `json:"name"`
	Year    *LooseInt  `json:"year"`
	Version *string    `json:"version"`
	BrandID *LooseInt  `json:"brand_id"`
	Active  *LooseBool `json:"is_active"`
}

type ModelFilter struct {
	ID      int
	BrandID int
	Q       string
	Active  string
}

// ===== VehicleType =====

type TypeInput struct {
	Name string `json:"name"`
}

type TypePatch struct {
	ID     LooseInt   `json:"id"`
	Name   *string    `json:"name"`
	Active *LooseBool `json:"is_active"`
}

type TypeFilter struct {
	ID     int
	Q      string
	Active string
}

// ===== Subtype =====

type SubtypeInput struct {
	Name    string    `json:"name"`
	TypeID  LooseInt  `json:"type_id"`
	Year    *LooseInt `json:"year"`
	Version string    `json:"version"`
}

type SubtypePatch struct {
	ID      LooseInt   `json:"id"`
	Name    *string    `json:"name"`
	TypeID  *LooseInt  `json:"type_id"`
	Year    *LooseInt  `json:"year"`
	Version *string    `json:"version"`
	Active  *LooseBool `json:"is_active"`
}

type SubtypeFilter struct {
	ID     int
	TypeID int
	Q      string
	Active string
}

// ===== Price =====

// PriceMatrix es el body del upsert masivo: model_id -> subtype_id -> precio.
// Las claves llegan como strings (son keys de objeto JSON) y el precio sin
// tipar; los valores vacíos o no numéricos se saltean sin error.
type PriceMatrix map[string]map[string]any

type PricePatch struct {
	ID        LooseInt     `json:"id"`
	ModelID   *LooseInt    `json:"model_id"`
	SubtypeID *LooseInt    `json:"subtype_id"`
	Price     *LooseNumber `json:"price"`
}

type PriceFilter struct {
	ID        int
	ModelID   int
	SubtypeID int
}

// ===== Client =====

type ClientInput struct {
	DNI     string    `json:"dni"`
	Placa   string    `json:"placa"`
	VIN     string    `json:"vin"`
	Kms     LooseInt  `json:"kms"`
	Celular string    `json:"celular"`
	Email   string    `json:"email"`
	Estado  LooseBool `json:"estado"`
	ModelID LooseInt  `json:"model_id"`
	BrandID LooseInt  `json:"brand_id"`
}

type ClientPatch struct {
	ID      LooseInt   `json:"id"`
	DNI     *string    `json:"dni"`
	Placa   *string    `json:"placa"`
	VIN     *string    `json:"vin"`
	Kms     *LooseInt  `json:"kms"`
	Celular *string    `json:"celular"`
	Email   *string    `json:"email"`
	Estado  *LooseBool `json:"estado"`
	ModelID *LooseInt  `json:"model_id"`
	BrandID *LooseInt  `json:"brand_id"`
}

type ClientFilter struct {
	ID      int
	ModelID int
	BrandID int
	Q       string
	Active  string
}
