package entities

// Item maps the user_item table. PhoneNumber references the owning account
// by value only; items are never joined through a foreign key, so deleting
// an account without cascading leaves orphaned rows (accepted behavior).
// SearchInitial is derived from Name and kept in sync on every rename.
type Item struct {
	Seq            uint   `gorm:"primaryKey;autoIncrement" json:"seq"`
	PhoneNumber    string `gorm:"type:varchar(200);not null" json:"phone_number"`
	Category       string `gorm:"type:varchar(200);not null" json:"category"`
	SellingPrice   int    `gorm:"not null" json:"selling_price"`
	CostPrice      int    `gorm:"not null" json:"cost_price"`
	Name           string `gorm:"type:varchar(200);not null" json:"name"`
	Description    string `gorm:"type:varchar(1000)" json:"description"`
	Barcode        string `gorm:"type:varchar(200);not null" json:"barcode"`
	ExpirationDate string `gorm:"type:varchar(200);not null" json:"expiration_date"`
	Size           string `gorm:"type:varchar(100);not null" json:"size"` // small / large
	SearchInitial  string `gorm:"type:varchar(200);not null" json:"search_initial"`
	ImageURL       string `gorm:"type:varchar(500)" json:"image_url,omitempty"`
}

func (Item) TableName() string {
	return "user_item"
}
