package models

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type CreateItemRequest struct {
	ID    int     `json:"id" form:"id" binding:"required,gt=0"`
	Name  string  `json:"name" form:"name" binding:"required"`
	Type  string  `json:"type" form:"type" binding:"required"`
	Price float64 `json:"price" form:"price" binding:"gte=0"`
	Image string  `json:"image" form:"image" binding:"required"`
}

// UpdateItemRequest carries a partial update; nil fields are left untouched.
type UpdateItemRequest struct {
	Name  *string  `json:"name" form:"name"`
	Type  *string  `json:"type" form:"type"`
	Price *float64 `json:"price" form:"price" binding:"omitempty,gte=0"`
	Image *string  `json:"image" form:"image"`
}

type ContactRequest struct {
	Name    string `json:"name" form:"name" binding:"required,max=100"`
	Email   string `json:"email" form:"email" binding:"required,email"`
	Message string `json:"message" form:"message" binding:"required,max=2000"`
}
