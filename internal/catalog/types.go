// Package catalog define las entidades del catálogo vehicular y sus
// tipos de entrada (create/update/list). Los nombres de campo JSON se
// mantienen tal cual los consume el frontend (dni, placa, estado, ...).
package catalog

import "time"

// Brand es una marca de vehículo.
type Brand struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Model es un modelo de vehículo, asociado a una marca.
type Model struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Year      int       `json:"year"`
	Version   string    `json:"version"`
	BrandID   int       `json:"brand_id"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// VehicleType es un tipo de vehículo (sedán, SUV, ...).
type VehicleType struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Subtype es un subtipo dentro de un tipo de vehículo.
// Year es opcional y puede quedar en null.
type Subtype struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	TypeID    int       `json:"type_id"`
	Year      *int      `json:"year"`
	Version   string    `json:"version"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SubtypeView es un subtipo enriquecido con el nombre de su tipo.
// TypeName queda en null si el tipo padre ya no existe.
type SubtypeView struct {
	Subtype
	TypeName *string `json:"type_name"`
}

// Price es el precio para un par (modelo, subtipo). El par es único
// dentro de la tabla: un segundo write sobre el mismo par actualiza.
type Price struct {
	ID        int       `json:"id"`
	ModelID   int       `json:"model_id"`
	SubtypeID int       `json:"subtype_id"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PriceView es una fila de precio enriquecida con el join de lectura
// contra models/brands/subtypes/types. BrandName y TypeName quedan en
// null si el padre ya no existe (no hay integridad referencial).
type PriceView struct {
	Price
	ModelName   string  `json:"model_name"`
	Year        int     `json:"year"`
	Version     string  `json:"version"`
	BrandName   *string `json:"brand_name"`
	SubtypeName string  `json:"subtype_name"`
	TypeName    *string `json:"type_name"`
}

// Client es un cliente del taller. DNI, email y placa son únicos de
// forma independiente (placa case-insensitive: se normaliza a mayúsculas,
// email a minúsculas).
type Client struct {
	ID        int       `json:"id"`
	DNI       string    `json:"dni"`
	Placa     string    `json:"placa"`
	VIN       string    `json:"vin"`
	Kms       int       `json:"kms"`
	Celular   string    `json:"celular"`
	Email     string    `json:"email"`
	Estado    bool      `json:"estado"`
	ModelID   int       `json:"model_id"`
	BrandID   int       `json:"brand_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
