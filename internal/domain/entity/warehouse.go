package entity

import "time"

// Warehouse representa una bodega donde se guardan activos fijos. Pertenece a una sede.
type Warehouse struct {
	ID        string
	BranchID  string
	Name      string
	NameAr    string
	Address   string
	AddressAr string
	Capacity  *int // opcional; nil = sin límite declarado
	CreatedAt time.Time
	UpdatedAt time.Time
}
