package models

// ProductionStatus is the operational verdict for one location-day, derived
// from total rainfall plus lightning, wind and visibility conditions.
type ProductionStatus struct {
	Impact  string `json:"impact" example:"Moderate"`
	Message string `json:"message" example:"Proceed with caution, production may be impacted due to moderate rainfall."`
}
