// models/analytics.go
package models

// CountBucket is one row of a grouped count (category breakdowns,
// rating distributions, status breakdowns).
type CountBucket struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// GrowthStat compares this calendar month against the previous one.
// GrowthPct is exactly 100 when LastMonth is zero.
type GrowthStat struct {
	ThisMonth int     `json:"thisMonth"`
	LastMonth int     `json:"lastMonth"`
	GrowthPct float64 `json:"growthPct"`
}

// AnalyticsSummary is the admin dashboard rollup.
type AnalyticsSummary struct {
	TotalUsers     int `json:"totalUsers"`
	TotalProviders int `json:"totalProviders"`
	TotalServices  int `json:"totalServices"`
	TotalBookings  int `json:"totalBookings"`
	TotalReviews   int `json:"totalReviews"`

	UserGrowth     GrowthStat `json:"userGrowth"`
	ProviderGrowth GrowthStat `json:"providerGrowth"`
	BookingGrowth  GrowthStat `json:"bookingGrowth"`

	BookingsByStatus []CountBucket `json:"bookingsByStatus"`
	CompletedPct     float64       `json:"completedPct"`

	TopCategories      []CountBucket `json:"topCategories"`
	RatingDistribution []CountBucket `json:"ratingDistribution"`
	AverageRating      float64       `json:"averageRating"`
}

// PageInfo describes one page of a listing, including the sliding
// five-button window rendered by the admin tables.
type PageInfo struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalItems int   `json:"totalItems"`
	TotalPages int   `json:"totalPages"`
	Window     []int `json:"window"`
}

// UnknownLabel is rendered in place of any foreign-key target that no
// longer exists. Referential gaps are a display concern, not an error.
const UnknownLabel = "Unknown"

// BookingView is a booking joined to its customer, provider and service.
type BookingView struct {
	Booking       `bson:",inline"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	ProviderName  string `json:"providerName"`
	ServiceTitle  string `json:"serviceTitle"`
}

// ProviderView is a provider joined to its owning user account.
type ProviderView struct {
	Provider   `bson:",inline"`
	OwnerName  string `json:"ownerName"`
	OwnerEmail string `json:"ownerEmail"`
}

// ServiceView is a service joined to its provider.
type ServiceView struct {
	Service      `bson:",inline"`
	ProviderName string `json:"providerName"`
}

// ReviewView is a review joined to its author and provider.
type ReviewView struct {
	Review       `bson:",inline"`
	ReviewerName string `json:"reviewerName"`
	ProviderName string `json:"providerName"`
}
