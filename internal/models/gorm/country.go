package gorm

type Country struct {
	ID               int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name             string `gorm:"column:name;type:varchar(100)" json:"name"`
	CountryCodeTwo   string `gorm:"column:country_code_two;type:varchar(2)" json:"country_code_two"`
	CountryCodeThree string `gorm:"column:country_code_three;type:varchar(3)" json:"country_code_three"`
	MobileCode       string `gorm:"column:mobile_code;type:varchar(20)" json:"mobile_code"`
	ContinentID      int64  `gorm:"column:continent_id" json:"continent_id"`
}

// TableName specifies the table name for GORM
func (Country) TableName() string {
	return "countries"
}
