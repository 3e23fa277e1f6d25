package models

// Post is a venue/place entry. Exactly one of BusinessID/ExplorerID is set.
// AverageRating and RatingCount are maintained together by the rating service
// so list endpoints never have to aggregate on read.
type Post struct {
	BaseModel
	BusinessID    *string `gorm:"index"`
	ExplorerID    *string `gorm:"index"`
	Title         string  `gorm:"not null"`
	Category      string  `gorm:"index"`
	Location      string
	Image1        string
	Image2        string
	Image3        string
	Image4        string
	Description   string
	AverageRating float64 `gorm:"default:0"`
	RatingCount   int     `gorm:"default:0"`

	// Relations
	Ratings []Rating `gorm:"foreignKey:PostID"`
}

// Rating is one explorer's score for a post. Re-rating updates the row, the
// pair stays unique.
type Rating struct {
	BaseModel
	PostID     string `gorm:"not null;index;uniqueIndex:idx_post_explorer"`
	ExplorerID string `gorm:"not null;index;uniqueIndex:idx_post_explorer"`
	Value      int    `gorm:"not null;check:value >= 1 AND value <= 5"`
}

type Favorite struct {
	BaseModel
	ExplorerID string `gorm:"not null;index;uniqueIndex:idx_explorer_post"`
	PostID     string `gorm:"not null;index;uniqueIndex:idx_explorer_post"`
}
