package breeds

type Breed struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"size:100;not null"`
}
