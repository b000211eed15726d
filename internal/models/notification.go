package models

// Notification is an in-app message for a provider, created when one of
// their slots is booked. It is never mutated after creation except for the
// read flag.
type Notification struct {
	BaseModel
	UserID  uint   `gorm:"index;not null" json:"userId"`
	Content string `gorm:"size:255;not null" json:"content"`
	Read    bool   `gorm:"default:false" json:"read"`
}
