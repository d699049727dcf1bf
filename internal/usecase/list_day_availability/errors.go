package list_day_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("list_day_availability: invalid input data")

	// ErrStorage возвращается при ошибках чтения из хранилища
	ErrStorage = errors.New("list_day_availability: storage failure")
)
