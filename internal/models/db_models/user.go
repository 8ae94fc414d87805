package db_models

type User struct {
	BaseModel
	Username     string `gorm:"uniqueIndex;size:50"`
	PasswordHash string

	Trips []Trip
}
