package domain

// Sale is a read-only record produced by the POS/order system. CreationDate
// is kept as the ISO-8601 string the POS emitted; day filtering compares it
// by prefix, no timezone conversion happens here.
type Sale struct {
	ID               string     `gorm:"size:40;primaryKey" json:"id"`
	OrderName        string     `gorm:"size:120" json:"orderName,omitempty"`
	CreationDate     string     `gorm:"size:40;index" json:"creationDate"`
	TotalAmount      float64    `gorm:"type:decimal(12,2)" json:"totalAmount"`
	StatusNF         string     `gorm:"size:30" json:"statusNf,omitempty"`
	NumberInvoice    int        `gorm:"default:0" json:"numberInvoice,omitempty"`
	AccessKey        string     `gorm:"size:60" json:"accessKey,omitempty"`
	IsCanceled       bool       `gorm:"default:false;index" json:"isCanceled"`
	UniqueIdentifier string     `gorm:"size:60;uniqueIndex" json:"uniqueIdentifier"`
	Customer         *Customer  `gorm:"type:jsonb;serializer:json" json:"customer,omitempty"`
	Items            []SaleItem `gorm:"foreignKey:SaleID" json:"items,omitempty"`
}

// SaleItem embeds a snapshot of the product at sale time, not a live
// reference. NetItem is the authoritative line total for aggregation even
// when it disagrees with Quantity*UsedPrice.
type SaleItem struct {
	ID          uint            `gorm:"primaryKey" json:"-"`
	SaleID      string          `gorm:"size:40;index" json:"-"`
	Product     ProductSnapshot `gorm:"type:jsonb;serializer:json" json:"product"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	UsedPrice   float64         `gorm:"type:decimal(12,2)" json:"usedPrice"`
	NetItem     float64         `gorm:"type:decimal(12,2)" json:"netItem"`
	Observation string          `gorm:"size:255" json:"observation,omitempty"`
}

// ProductSnapshot is the value copy of a product captured on a sale line.
// ID 0 means the product had no id when the sale was recorded.
type ProductSnapshot struct {
	ID        uint    `json:"id,omitempty"`
	Name      string  `json:"name"`
	SellValue float64 `json:"sellValue,omitempty"`
}
