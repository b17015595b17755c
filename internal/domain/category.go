package domain

type Category struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type CategoryRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}
