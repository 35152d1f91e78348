package entity

// Stats conteos globales del panel de administración.
type Stats struct {
	TotalBranches   int
	TotalWarehouses int
	TotalAssets     int
	ActiveAssets    int
	InactiveAssets  int
	TotalUsers      int
}
