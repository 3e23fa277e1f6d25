package dto

type CreatePostRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=120"`
	Category    string `json:"category" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Image1      string `json:"image1"`
	Image2      string `json:"image2"`
	Image3      string `json:"image3"`
	Image4      string `json:"image4"`
	Description string `json:"description"`
}

// PostResponse uses the column-style field names the mobile client binds to.
type PostResponse struct {
	ID            string  `json:"idposts"`
	BusinessID    *string `json:"business_idbusiness,omitempty"`
	ExplorerID    *string `json:"explorer_idexplorer,omitempty"`
	Title         string  `json:"title"`
	Category      string  `json:"category"`
	Location      string  `json:"location"`
	Image1        string  `json:"image1"`
	Image2        string  `json:"image2,omitempty"`
	Image3        string  `json:"image3,omitempty"`
	Image4        string  `json:"image4,omitempty"`
	Description   string  `json:"description"`
	AverageRating float64 `json:"averageRating"`
	RatingCount   int     `json:"ratingCount"`
	CreatedAt     string  `json:"created_at"`
}

type RateRequest struct {
	PostID     string `json:"idposts" validate:"required"`
	ExplorerID string `json:"explorer_idexplorer" validate:"required"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
}

type RateResponse struct {
	AverageRating float64 `json:"averageRating"`
}
