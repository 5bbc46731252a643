package models

import "time"

type TransactionType string

const (
	TransactionHarvest   TransactionType = "harvest"
	TransactionTransport TransactionType = "transport"
	TransactionStorage   TransactionType = "storage"
	TransactionSale      TransactionType = "sale"
	TransactionPurchase  TransactionType = "purchase"
)

type SupplyChainTransaction struct {
	TransactionID   uint            `gorm:"column:transaction_id;primaryKey;autoIncrement" json:"transaction_id"`
	CropID          uint            `gorm:"not null;index" json:"crop_id"`
	Crop            *CropManagement `gorm:"foreignKey:CropID" json:"-"`
	TransactionType TransactionType `gorm:"size:20;not null" json:"transaction_type"`
	Quantity        float64         `gorm:"not null" json:"quantity"`
	Price           *float64        `json:"price"`
	FromLocation    string          `gorm:"size:255;not null" json:"from_location"`
	ToLocation      string          `gorm:"size:255;not null" json:"to_location"`
	Timestamp       time.Time       `gorm:"autoCreateTime" json:"timestamp"`
	BlockchainHash  string          `gorm:"size:255;uniqueIndex;not null" json:"blockchain_hash"`
	Status          string          `gorm:"size:50;not null" json:"status"`
}

func (SupplyChainTransaction) TableName() string { return "supply_chain_transactions" }

type SupplyChainTransactionCreate struct {
	CropID          uint     `json:"crop_id" validate:"required,gt=0"`
	TransactionType string   `json:"transaction_type" validate:"required,oneof=harvest transport storage sale purchase"`
	Quantity        float64  `json:"quantity" validate:"required,gt=0"`
	Price           *float64 `json:"price" validate:"omitempty,gte=0"`
	FromLocation    string   `json:"from_location" validate:"required,min=3,max=255,alpha_space"`
	ToLocation      string   `json:"to_location" validate:"required,min=3,max=255,alpha_space"`
	BlockchainHash  string   `json:"blockchain_hash" validate:"required,len=10,alphanum"`
	Status          string   `json:"status" validate:"required,min=2,max=50,alnum_space"`
}
