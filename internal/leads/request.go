package leads

import (
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ProjectTypes are the accepted values of ContactRequest.ProjectType.
var ProjectTypes = []string{"residential", "commercial", "industrial", "utility", "other"}

// ContactRequest is the payload of the website contact form.
type ContactRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=120"`
	Email       string `json:"email" validate:"required,email,max=254"`
	Phone       string `json:"phone" validate:"omitempty,max=40"`
	Company     string `json:"company" validate:"omitempty,max=160"`
	ProjectType string `json:"projectType" validate:"required,projecttype"`
	ProductID   string `json:"productId" validate:"omitempty,uuid"`
	Message     string `json:"message" validate:"required,min=10,max=5000"`
	Consent     bool   `json:"consent" validate:"required"`
}

func (r *ContactRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
	r.Company = strings.TrimSpace(r.Company)
	r.ProjectType = strings.ToLower(strings.TrimSpace(r.ProjectType))
	r.ProductID = strings.TrimSpace(r.ProductID)
	r.Message = strings.TrimSpace(r.Message)
}

// NewValidator returns a validator that reports json field names and knows
// the projecttype tag.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("projecttype", func(fl validator.FieldLevel) bool {
		return slices.Contains(ProjectTypes, fl.Field().String())
	})

	return v
}
