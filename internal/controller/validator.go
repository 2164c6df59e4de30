package controller

import (
	"wellnessa_backend/internal/model"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom binding rules used by request DTOs.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("accesslevel", func(fl validator.FieldLevel) bool {
		return model.AccessLevel(fl.Field().Uint()).Valid()
	})
}
