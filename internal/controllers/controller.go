package controllers

import (
	"github.com/envelope-zero/personal-budget/internal/budget"
)

// Controller holds the dependencies of all handlers.
type Controller struct {
	Service *budget.Service
}

func New(service *budget.Service) Controller {
	return Controller{Service: service}
}
