package dto

// DashboardStatsDTO is the body of GET /dashboard/stats
type DashboardStatsDTO struct {
	TotalUsers     int64 `json:"totalUsers"`
	TotalTasks     int64 `json:"totalTasks"`
	CompletedTasks int64 `json:"completedTasks"`
	PendingTasks   int64 `json:"pendingTasks"`
	CompletionRate int   `json:"completionRate"`
}
