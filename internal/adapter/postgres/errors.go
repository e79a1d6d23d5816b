package postgres

import "errors"

var (
	errRequiredField  = errors.New("required field is missing")
	errCheckViolation = errors.New("value violates a table constraint")
	errForeignKey     = errors.New("referenced record does not exist")
)
