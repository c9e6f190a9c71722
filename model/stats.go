package model

type StatsResponse struct {
	TotalUsers        int64   `json:"totalUsers"`
	TotalBookings     int64   `json:"totalBookings"`
	CompletedBookings int64   `json:"completedBookings"`
	ActiveBookings    int64   `json:"activeBookings"`
	TotalRevenue      int64   `json:"totalRevenue"`
	CompletionRate    float64 `json:"completionRate"`
}
