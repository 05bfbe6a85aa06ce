package response

import (
	"errors"
	log "log/slog"
	"net/http"

	"github.com/Wellingtondela/wsapet-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

// Success writes the payload as-is with 200.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created writes the payload with 201.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Erro writes the Portuguese-keyed error body used by the post, like and
// comment routes.
func Erro(c *gin.Context, err error) {
	status, msg := resolve(err)
	c.JSON(status, gin.H{"erro": msg})
}

// Error writes the English-keyed error body used by the profile and
// appointment routes. Both spellings predate this service and both are
// part of the client contract.
func Error(c *gin.Context, err error) {
	status, msg := resolve(err)
	c.JSON(status, gin.H{"error": msg})
}

func resolve(err error) (int, string) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return http.StatusBadRequest, "dados inválidos"
	}

	var unmarshalTypeError *json.UnmarshalTypeError
	if errors.As(err, &unmarshalTypeError) {
		return http.StatusBadRequest, "JSON inválido"
	}

	status, ok := service.ErrorMap[err]
	if !ok {
		status = http.StatusInternalServerError
		log.Error("Error", "err", err)
		return status, "erro interno"
	}
	return status, err.Error()
}
