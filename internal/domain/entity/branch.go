package entity

import "time"

// Branch representa una sede física de la organización; agrupa bodegas.
// Los campos *Ar guardan la versión en árabe del nombre y la dirección (opcionales).
type Branch struct {
	ID        string
	Name      string
	NameAr    string
	Address   string
	AddressAr string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BranchSummary es una sede con el conteo de sus bodegas (listados).
type BranchSummary struct {
	Branch
	WarehouseCount int
}
