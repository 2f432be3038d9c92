package user

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type User struct {
	Username string `json:"username"`
	ID       string `json:"id"`
	Role     string `json:"role,omitempty"`
	Password string `json:"-" bson:"-"`
}

type Repository interface {
	Create(user *User) error
	FindByUsername(username string) (*User, error)
}
