package dto

// Signup roles as the mobile picker sends them.
const (
	SignupRoleExplorer = "explorer"
	SignupRoleBusiness = "business_owner"
)

type SignupRequest struct {
	Role     string `json:"role" validate:"required,oneof=explorer business_owner"`
	Username string `json:"username" validate:"required,min=3,max=40"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`

	// Explorer fields
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`

	// Business fields
	BusinessName  string `json:"businessName"`
	BOID          string `json:"BOid"`
	Category      string `json:"category"`
	CredentialImg string `json:"credImg"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=explorer business_owner admin"`
}

// UpdateExplorerRequest carries the editable profile fields. Nil means keep
// the current value.
type UpdateExplorerRequest struct {
	Firstname   *string  `json:"firstname"`
	Lastname    *string  `json:"lastname"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
	MobileNum   *string  `json:"mobileNum"`
	Longitude   *float64 `json:"long"`
	Latitude    *float64 `json:"latt"`
}

type AuthResponse struct {
	AccessToken string      `json:"access_token"`
	Role        string      `json:"role"`
	User        interface{} `json:"user"`
}

type ExplorerResponse struct {
	ID           string  `json:"idexplorer"`
	Firstname    string  `json:"firstname"`
	Lastname     string  `json:"lastname"`
	Username     string  `json:"username"`
	Email        string  `json:"email"`
	Description  string  `json:"description"`
	Image        string  `json:"image"`
	Badge        string  `json:"badge"`
	NumOfPosts   int     `json:"numOfPosts"`
	NumOfVisits  int     `json:"numOfVisits"`
	NumOfReviews int     `json:"numOfReviews"`
	Coins        int     `json:"coins"`
	MobileNum    string  `json:"mobileNum"`
	Longitude    float64 `json:"long"`
	Latitude     float64 `json:"latt"`
}

type BusinessResponse struct {
	ID            string  `json:"idbusiness"`
	Username      string  `json:"username"`
	Email         string  `json:"email"`
	BusinessName  string  `json:"businessName"`
	BOID          string  `json:"BOid"`
	Category      string  `json:"category"`
	CredentialImg string  `json:"credImg"`
	Description   string  `json:"description"`
	Image         string  `json:"image"`
	MobileNum     string  `json:"mobileNum"`
	Longitude     float64 `json:"long"`
	Latitude      float64 `json:"latt"`
	Approved      bool    `json:"approved"`
	Subscribed    bool    `json:"subscribed"`
}
