package domain

import "errors"

// Erros devolvidos pelos repositórios (gorm e memória).
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)
