package handlers

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"blogapi/internal/config"
	"blogapi/internal/database"
	"blogapi/internal/service"
)

type Handlers struct {
	AuthService  service.AuthService
	TokenService service.TokenService
	PostService  service.PostService
	DB           *database.DB
	Cfg          *config.Config
	Validate     *validator.Validate
}

func NewHandlers(services *service.Service, db *database.DB, cfg *config.Config) *Handlers {
	return &Handlers{
		AuthService:  services.Auth,
		TokenService: services.Token,
		PostService:  services.Post,
		DB:           db,
		Cfg:          cfg,
		Validate:     newValidator(),
	}
}

// newValidator reports field names by json tag so validation errors match
// the request payload
func newValidator() *validator.Validate {
	validate := validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return validate
}
