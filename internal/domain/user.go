package domain

import "time"

type User struct {
	ID        string    `json:"id"`
	Nickname  string    `json:"nickname"`
	CreatedAt time.Time `json:"created_at"`
}

// UserSummary adds the stored-result count for admin listings.
type UserSummary struct {
	User
	ResultCount int `json:"result_count"`
}

// Statistics is the admin overview aggregate.
type Statistics struct {
	TotalUsers       int         `json:"total_users"`
	TotalResults     int         `json:"total_results"`
	TodayCount       int         `json:"today_count"`
	TypeDistribution []TypeCount `json:"type_distribution"`
}

type TypeCount struct {
	TypeCode string `json:"type_code"`
	TypeName string `json:"type_name"`
	Count    int    `json:"count"`
}
