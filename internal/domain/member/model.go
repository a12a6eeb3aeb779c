package member

import (
	"time"
)

const SyncStatusSynced = "synced"

// Member - запись об одном члене церкви. Необязательные поля - указатели, nil хранится как NULL.
type Member struct {
	ID                string         `json:"id" mapstructure:"id"`
	FirstName         string         `json:"firstName" mapstructure:"firstName"`
	LastName          string         `json:"lastName" mapstructure:"lastName"`
	DOB               *string        `json:"dob" mapstructure:"dob"`
	Age               *int           `json:"age" mapstructure:"age"`
	Gender            *string        `json:"gender" mapstructure:"gender"`
	Phone             *string        `json:"phone" mapstructure:"phone"`
	Address           *string        `json:"address" mapstructure:"address"`
	Baptized          *bool          `json:"baptized" mapstructure:"baptized"`
	WaterBaptized     *bool          `json:"waterBaptized" mapstructure:"waterBaptized"`
	HolyGhostBaptized *bool          `json:"holyGhostBaptized" mapstructure:"holyGhostBaptized"`
	PresidingElder    *string        `json:"presidingElder" mapstructure:"presidingElder"`
	Working           *bool          `json:"working" mapstructure:"working"`
	Occupation        *string        `json:"occupation" mapstructure:"occupation"`
	MaritalStatus     *string        `json:"maritalStatus" mapstructure:"maritalStatus"`
	ChildrenCount     *int           `json:"childrenCount" mapstructure:"childrenCount"`
	Ministry          *string        `json:"ministry" mapstructure:"ministry"`
	JoinedDate        *string        `json:"joinedDate" mapstructure:"joinedDate"`
	Picture           *string        `json:"picture" mapstructure:"picture"`
	Metadata          map[string]any `json:"metadata" mapstructure:"metadata"`
	SyncStatus        string         `json:"syncStatus" mapstructure:"-"`
	CreatedAt         time.Time      `json:"createdAt" mapstructure:"-"`
	UpdatedAt         time.Time      `json:"updatedAt" mapstructure:"-"`
}

// RawRecord - запись в том виде, в котором ее прислал клиент
type RawRecord map[string]any

// ID возвращает идентификатор записи как строку, если он есть
func (r RawRecord) ID() string {
	v, ok := r["id"]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}
