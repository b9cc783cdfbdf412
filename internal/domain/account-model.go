package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountSettings is stored as a single jsonb column so the preference map
// keeps the exact shape the storefront expects.
type AccountSettings struct {
	EmailNotifications  bool     `json:"emailNotifications"`
	SmsNotifications    bool     `json:"smsNotifications"`
	MarketingEmails     bool     `json:"marketingEmails"`
	OrderUpdates        bool     `json:"orderUpdates"`
	PriceAlerts         bool     `json:"priceAlerts"`
	DefaultDeliveryTime string   `json:"defaultDeliveryTime"`
	FlowerPreferences   []string `json:"flowerPreferences"`
	AllergyInfo         string   `json:"allergyInfo"`
	AutoReorder         bool     `json:"autoReorder"`
	WishlistPublic      bool     `json:"wishlistPublic"`
}

func DefaultAccountSettings() AccountSettings {
	return AccountSettings{
		EmailNotifications:  true,
		SmsNotifications:    false,
		MarketingEmails:     true,
		OrderUpdates:        true,
		PriceAlerts:         false,
		DefaultDeliveryTime: "morning",
		FlowerPreferences:   []string{},
		AllergyInfo:         "",
		AutoReorder:         false,
		WishlistPublic:      false,
	}
}

func (s AccountSettings) Value() (driver.Value, error) {
	if s.FlowerPreferences == nil {
		s.FlowerPreferences = []string{}
	}
	return json.Marshal(s)
}

func (s *AccountSettings) Scan(value interface{}) error {
	if value == nil {
		*s = AccountSettings{FlowerPreferences: []string{}}
		return nil
	}
	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return errors.New("unsupported type for AccountSettings")
	}
	if err := json.Unmarshal(b, s); err != nil {
		return err
	}
	if s.FlowerPreferences == nil {
		s.FlowerPreferences = []string{}
	}
	return nil
}

type Account struct {
	ID                 string          `gorm:"type:uuid;primaryKey" json:"id"`
	Email              string          `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash       string          `gorm:"not null" json:"-"`
	UserName           string          `json:"userName"`
	Phone              string          `json:"phone"`
	Address            string          `json:"address"`
	Avatar             string          `json:"avatar"`
	Settings           AccountSettings `gorm:"type:jsonb" json:"settings"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
	LastPasswordChange *time.Time      `json:"lastPasswordChange,omitempty"`
	LastLogin          *time.Time      `json:"lastLogin,omitempty"`
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
