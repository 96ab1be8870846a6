// Package entity defines the domain entities for the restaurants feature.
package entity

// RestaurantOffer describes a promotional offer attached to a restaurant.
type RestaurantOffer struct {
	Title              string `json:"title"`
	Description        string `json:"description,omitempty"`
	CouponCode         string `json:"couponCode,omitempty"`
	DiscountPercentage int    `json:"discountPercentage,omitempty"`
	MaxDiscount        int    `json:"maxDiscount,omitempty"`
}

// Restaurant represents one entry of the discovery catalog.
// Cuisines, tags, and the offer are stored as JSON documents; filtering on
// them happens in the usecase, not in SQL.
type Restaurant struct {
	ID             uint             `gorm:"primaryKey" json:"id"`
	Slug           string           `gorm:"uniqueIndex;size:255;not null" json:"slug"`
	Name           string           `gorm:"size:255;not null" json:"name"`
	Description    string           `gorm:"size:1024" json:"description"`
	Cuisines       []string         `gorm:"serializer:json" json:"cuisines"`
	Locality       string           `gorm:"size:255" json:"locality"`
	City           string           `gorm:"size:255" json:"city"`
	AreaName       string           `gorm:"size:255" json:"areaName"`
	Rating         float64          `json:"rating"`
	ReviewCount    int              `json:"reviewCount"`
	DeliveryTime   int              `json:"deliveryTime"` // minutes
	CostForTwo     int              `json:"costForTwo"`
	Distance       float64          `json:"distance"` // kilometers
	ImageURL       string           `gorm:"size:1024" json:"imageUrl"`
	Offer          *RestaurantOffer `gorm:"serializer:json" json:"offer,omitempty"`
	IsPureVeg      bool             `json:"isPureVeg,omitempty"`
	Promoted       bool             `json:"promoted,omitempty"`
	Tags           []string         `gorm:"serializer:json" json:"tags,omitempty"`
	EtaDescription string           `gorm:"size:255" json:"etaDescription,omitempty"`
}

// TableName returns the table name for GORM.
func (Restaurant) TableName() string {
	return "restaurants"
}
