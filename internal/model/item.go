package model

import "time"

// Item — единица хранения в лаборатории. Один и тот же тип описывает
// как активную запись (таблица inventory), так и архивную (таблица archived):
// различие только в наличии PickupDate.
// Имена колонок соответствуют историческим именам схемы (camelCase),
// имена JSON-полей — wire-формату фронтенда.
type Item struct {
	ID           string     `gorm:"primaryKey;column:id" json:"id"`
	OwnerName    string     `gorm:"column:ownerName;not null" json:"ownerName"`
	EmailID      string     `gorm:"column:emailId;not null" json:"emailId"`
	SSOID        string     `gorm:"column:ssoId;not null" json:"ssoId"`
	ObjectStored string     `gorm:"column:objectStored;not null" json:"objectStored"`
	UniqueID     string     `gorm:"column:uniqueId;not null" json:"uniqueId"`
	Location     string     `gorm:"column:location;not null" json:"location"`
	TimePeriod   int        `gorm:"column:timePeriod;not null" json:"timePeriod"`
	DateAdded    time.Time  `gorm:"column:dateAdded;not null" json:"dateAdded"`
	ExpiryDate   time.Time  `gorm:"column:expiryDate;not null" json:"expiryDate"`
	PickupDate   *time.Time `gorm:"column:pickupDate" json:"pickupDate,omitempty"`
}

// Archived сообщает, забран ли предмет (pickupDate устанавливается ровно
// один раз — при переносе в архив).
func (i *Item) Archived() bool { return i.PickupDate != nil }
