package models

// Explorer is a consumer account. Profile counters (NumOfPosts, Coins, ...)
// are plain columns maintained by the services that change them.
type Explorer struct {
	BaseModel
	Firstname    string
	Lastname     string
	Username     string `gorm:"uniqueIndex;not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Description  string
	Image        string
	Badge        string
	NumOfPosts   int `gorm:"default:0"`
	NumOfVisits  int `gorm:"default:0"`
	NumOfReviews int `gorm:"default:0"`
	Coins        int `gorm:"default:0"`
	MobileNum    string
	Longitude    float64
	Latitude     float64

	// Relations
	Posts        []Post             `gorm:"foreignKey:ExplorerID"`
	Ratings      []Rating           `gorm:"foreignKey:ExplorerID"`
	Favorites    []Favorite         `gorm:"foreignKey:ExplorerID"`
	JoinRequests []EventJoinRequest `gorm:"foreignKey:ExplorerID"`
}

// Admin is a dashboard account. Kept separate from Explorer/Business so the
// role cannot be obtained through the public signup path.
type Admin struct {
	BaseModel
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}
