package service

import (
	"errors"
)

const (
	BadRequest          = 400
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrUserIDRequired      = errors.New("userId é obrigatório")
	ErrPostIDRequired      = errors.New("postId é obrigatório")
	ErrCommentTextRequired = errors.New("texto é obrigatório")
	ErrPostNotFound        = errors.New("post não encontrado")
	ErrProfileNotFound     = errors.New("Usuário não encontrado")
	ErrAppointmentInvalid  = errors.New("dados do agendamento inválidos")
)

// ErrorMap resolves a sentinel error to its HTTP status. Anything not in
// the map is a store or internal failure and reported as 500.
var ErrorMap = map[error]int{
	ErrUserIDRequired:      BadRequest,
	ErrPostIDRequired:      BadRequest,
	ErrCommentTextRequired: BadRequest,
	ErrPostNotFound:        NotFound,
	ErrProfileNotFound:     NotFound,
	ErrAppointmentInvalid:  BadRequest,
}
