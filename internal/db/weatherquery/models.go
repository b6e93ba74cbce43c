package weatherquery

import (
	"time"
)

type WeatherQuery struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	City          string    `json:"city" gorm:"index:idx_city;index:idx_city_created_at"`
	Status        string    `json:"status" gorm:"column:status"`
	Temperature   *float64  `json:"temperature,omitempty" gorm:"column:temperature"`
	WeatherCode   *int      `json:"weather_code,omitempty" gorm:"column:weather_code"`
	Report        string    `json:"report,omitempty" gorm:"column:report"`
	ErrorMessage  string    `json:"error_message,omitempty" gorm:"column:error_message"`
	FailureReason string    `json:"failure_reason,omitempty" gorm:"column:failure_reason"`
	CreatedAt     time.Time `json:"created_at" gorm:"index:idx_created_at;index:idx_city_created_at"`
}

func (WeatherQuery) TableName() string {
	return "weather_queries"
}
