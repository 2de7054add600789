package handlers

import "gorm.io/gorm"

// Handler carries the dependencies shared by every route handler; it is
// built once at startup and injected into the router.
type Handler struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}
