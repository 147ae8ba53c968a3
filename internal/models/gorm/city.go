package gorm

// City groups airports. CountryID may be null or point at a country that
// does not exist.
type City struct {
	ID        int64   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string  `gorm:"column:name;type:varchar(100)" json:"name"`
	CountryID *int64  `gorm:"column:country_id;index" json:"country_id"`
	IsActive  bool    `gorm:"column:is_active" json:"is_active"`
	Lat       float64 `gorm:"column:lat;type:double precision" json:"lat"`
	Long      float64 `gorm:"column:long;type:double precision" json:"long"`

	// Relationships
	Country *Country `gorm:"foreignKey:CountryID" json:"-"`
}

// TableName specifies the table name for GORM
func (City) TableName() string {
	return "cities"
}
