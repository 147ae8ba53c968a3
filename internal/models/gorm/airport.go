package gorm

// Airport is a row of the airports table. IATACode is the public lookup key
// and is indexed but deliberately not unique.
type Airport struct {
	ID           int64   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ICAOCode     string  `gorm:"column:icao_code;type:varchar(4)" json:"icao_code"`
	IATACode     string  `gorm:"column:iata_code;type:varchar(3);index" json:"iata_code"`
	Name         string  `gorm:"column:name;type:text" json:"name"`
	Type         string  `gorm:"column:type;type:varchar(50)" json:"type"`
	LatitudeDeg  float64 `gorm:"column:latitude_deg;type:double precision" json:"latitude_deg"`
	LongitudeDeg float64 `gorm:"column:longitude_deg;type:double precision" json:"longitude_deg"`
	ElevationFt  int64   `gorm:"column:elevation_ft" json:"elevation_ft"`
	CityID       *int64  `gorm:"column:city_id;index" json:"city_id"`

	// Relationships
	City *City `gorm:"foreignKey:CityID" json:"-"`
}

// TableName specifies the table name for GORM
func (Airport) TableName() string {
	return "airports"
}
