package dto

// StatsResponse conteos globales del panel de administración.
type StatsResponse struct {
	TotalBranches   int `json:"total_branches"`
	TotalWarehouses int `json:"total_warehouses"`
	TotalAssets     int `json:"total_assets"`
	ActiveAssets    int `json:"active_assets"`
	InactiveAssets  int `json:"inactive_assets"`
	TotalUsers      int `json:"total_users"`
}
