package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Name     string `json:"name"`

	CompanyID uint    `gorm:"index" json:"company_id"`
	Company   Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
}

// Company is the business an account manages. RIF is the Venezuelan tax id
// and must be unique across companies.
type Company struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name     string `gorm:"not null" json:"name"`
	RIF      string `gorm:"uniqueIndex;not null" json:"rif"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	LogoURL  string `json:"logo_url"`
	Category string `json:"category"`
}

// Product is a catalog entry with tracked stock.
type Product struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CompanyID   uint    `gorm:"not null;index" json:"company_id"`
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	ImageURL    string  `json:"image_url"`
	Stock       int     `gorm:"default:0" json:"stock"`
}

// Service is a catalog entry without stock.
type Service struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CompanyID   uint    `gorm:"not null;index" json:"company_id"`
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
}

type Customer struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CompanyID uint   `gorm:"not null;index" json:"company_id"`
	Name      string `gorm:"not null" json:"name"`
	Document  string `json:"document"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// SaleOrder is one entry in the sales ledger. The total is computed from its
// items at write time and stored, the ledger is append-oriented.
type SaleOrder struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CompanyID  uint      `gorm:"not null;index" json:"company_id"`
	CustomerID *uint     `gorm:"index" json:"customer_id,omitempty"`
	Customer   *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`

	Total float64 `gorm:"not null" json:"total"`
	Note  string  `json:"note"`

	Items []SaleOrderItem `gorm:"foreignKey:SaleOrderID;constraint:OnDelete:CASCADE" json:"items"`
}

type SaleOrderItem struct {
	ID uint `gorm:"primarykey" json:"id"`

	SaleOrderID uint    `gorm:"not null;index" json:"sale_order_id"`
	ProductID   *uint   `json:"product_id,omitempty"`
	ServiceID   *uint   `json:"service_id,omitempty"`
	Name        string  `gorm:"not null" json:"name"`
	Quantity    int     `gorm:"not null;default:1" json:"quantity"`
	UnitPrice   float64 `gorm:"not null" json:"unit_price"`
}

type Employee struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CompanyID uint   `gorm:"not null;index" json:"company_id"`
	Name      string `gorm:"not null" json:"name"`
	Document  string `json:"document"`
	Role      string `json:"role"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Active    bool   `gorm:"default:true" json:"active"`
}

type TaskStatus string

const (
	TaskStatusPending TaskStatus = "pending"
	TaskStatusDone    TaskStatus = "done"
)

type Task struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CompanyID  uint       `gorm:"not null;index" json:"company_id"`
	EmployeeID *uint      `gorm:"index" json:"employee_id,omitempty"`
	Employee   *Employee  `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	Title      string     `gorm:"not null" json:"title"`
	Detail     string     `json:"detail"`
	DueAt      *time.Time `json:"due_at,omitempty"`
	Status     TaskStatus `gorm:"type:varchar(16);default:'pending'" json:"status"`
}

type SocialPostStatus string

const (
	SocialPostDraft     SocialPostStatus = "draft"
	SocialPostScheduled SocialPostStatus = "scheduled"
	SocialPostPublished SocialPostStatus = "published"
	SocialPostFailed    SocialPostStatus = "failed"
)

// SocialPost is a composed social-media post. Delivery is handled by an
// external publisher; this record only tracks what the user composed and the
// outcome reported back.
type SocialPost struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CompanyID   uint             `gorm:"not null;index" json:"company_id"`
	Network     string           `gorm:"not null" json:"network"`
	Caption     string           `gorm:"type:text" json:"caption"`
	ImageURL    string           `json:"image_url"`
	ScheduledAt *time.Time       `gorm:"index" json:"scheduled_at,omitempty"`
	PublishedAt *time.Time       `json:"published_at,omitempty"`
	Status      SocialPostStatus `gorm:"type:varchar(16);default:'draft'" json:"status"`
	ExternalID  string           `json:"external_id,omitempty"`
	LastError   string           `json:"last_error,omitempty"`
}
